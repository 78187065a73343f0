package fcmsend

import (
	"firebase.google.com/go/messaging"

	"github.com/kayac/fcmsend/fcm"
	"github.com/kayac/fcmsend/fcmv1"
)

// Message is a JSON-serializable FCM request body. Concrete types are
// fcm.Payload for the legacy API and fcmv1.Payload for the v1 API.
type Message interface{}

// BuildCommonMessage constructs the plain notification message for the
// given target, which may be a registration token or a /topics/...
// identifier. The shape follows the chosen API: the v1 message object or
// the legacy {to, data} form.
func BuildCommonMessage(target string, v1 bool) Message {
	if v1 {
		return fcmv1.Payload{
			Message: messaging.Message{
				Notification: &messaging.Notification{
					Title: NotificationTitle,
					Body:  NotificationBody,
				},
				Token: target,
			},
		}
	}
	return fcm.Payload{
		To: target,
		Data: &fcm.Data{
			"title": NotificationTitle,
			"body":  NotificationBody,
		},
	}
}

// BuildOverrideMessage constructs the common v1 message and adds the
// Android and APNs platform overrides. Overrides are defined for the v1
// shape only, so there is no legacy variant.
func BuildOverrideMessage(target string) Message {
	p := BuildCommonMessage(target, true).(fcmv1.Payload)

	badge := ApnsBadgeCount
	p.Message.Android = &messaging.AndroidConfig{
		Notification: &messaging.AndroidNotification{
			ClickAction: AndroidClickAction,
		},
	}
	p.Message.APNS = &messaging.APNSConfig{
		Headers: map[string]string{
			"apns-priority": ApnsPriorityHigh,
		},
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				Badge: &badge,
			},
		},
	}

	return p
}
