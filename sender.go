package fcmsend

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/kayac/fcmsend/config"
	"github.com/kayac/fcmsend/fcm"
	"github.com/kayac/fcmsend/fcmv1"
)

// Sender delivers built messages to the FCM endpoint matching their
// shape. It holds a client per enabled API section.
type Sender struct {
	legacy *fcm.Client
	v1     *fcmv1.Client
}

// NewSender builds clients for every API enabled in conf.
func NewSender(conf config.Config) (*Sender, error) {
	s := &Sender{}

	if conf.FCM.Enabled {
		s.legacy = fcm.NewClient(conf.FCM.APIKey, nil, fcm.ClientTimeout)
	}
	if conf.FCMv1.Enabled {
		c, err := fcmv1.NewClientWithTokenSource(conf.FCMv1.ProjectID, conf.FCMv1.TokenSource, nil, fcmv1.ClientTimeout)
		if err != nil {
			return nil, errors.Wrap(err, "[fcm_v1]")
		}
		s.v1 = c
	}
	if s.legacy == nil && s.v1 == nil {
		return nil, fmt.Errorf("no fcm credentials are configured")
	}

	return s, nil
}

// Send delivers msg once. The endpoint falls out of the message shape:
// fcm.Payload goes to the legacy endpoint, fcmv1.Payload to the per
// project v1 endpoint. A returned error means the request could not be
// made at all; a delivery refusal is reported by the Result.
func (s *Sender) Send(msg Message) (Result, error) {
	uid := uuid.NewV4().String()
	start := time.Now()

	switch p := msg.(type) {
	case fcm.Payload:
		if s.legacy == nil {
			return nil, fmt.Errorf("fcm client is not present")
		}
		res, err := s.legacy.Send(p)
		if err != nil {
			return nil, err
		}
		s.logResult(uid, res, time.Now().Sub(start).Seconds())
		return res, nil
	case fcmv1.Payload:
		if s.v1 == nil {
			return nil, fmt.Errorf("fcmv1 client is not present")
		}
		res, err := s.v1.Send(p)
		if err != nil {
			return nil, err
		}
		s.logResult(uid, res, time.Now().Sub(start).Seconds())
		return res, nil
	}

	return nil, fmt.Errorf("unknown message type: %T", msg)
}

func (s *Sender) logResult(uid string, res Result, respTime float64) {
	entry := LogWithFields(logrus.Fields{
		"type":      "sender",
		"uid":       uid,
		"provider":  res.Provider(),
		"status":    res.Status(),
		"to":        res.RecipientIdentifier(),
		"resp_time": respTime,
	})
	if res.Sent() {
		entry.Infof("message sent")
	} else {
		entry.Warnf("message not sent")
	}
}
