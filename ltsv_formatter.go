package fcmsend

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LtsvFormatter is ltsv format for logrus
type LtsvFormatter struct {
	DisableTimestamp bool
	TimestampFormat  string
}

// Format entry
func (f *LtsvFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	prefixFieldClashes(entry.Data)

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = time.RFC3339
	}

	b := &bytes.Buffer{}
	appendKeyValue(b, "level", entry.Level.String())
	if entry.Message != "" {
		appendKeyValue(b, "msg", entry.Message)
	}
	for _, key := range keys {
		appendKeyValue(b, key, entry.Data[key])
	}
	if !f.DisableTimestamp {
		appendKeyValue(b, "time", entry.Time.Format(timestampFormat))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// isPlain reports whether text can be written without quoting.
func isPlain(text string) bool {
	for _, ch := range text {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.') {
			return false
		}
	}
	return true
}

func appendKeyValue(b *bytes.Buffer, key string, value interface{}) {
	b.WriteString(key)
	b.WriteByte(':')

	switch value := value.(type) {
	case string:
		if isPlain(value) {
			b.WriteString(value)
		} else {
			fmt.Fprintf(b, "%q", value)
		}
	case int, int64, int32:
		fmt.Fprintf(b, "%d", value)
	case float64, float32:
		fmt.Fprintf(b, "%f", value)
	case error:
		errmsg := value.Error()
		if isPlain(errmsg) {
			b.WriteString(errmsg)
		} else {
			fmt.Fprintf(b, "%q", errmsg)
		}
	default:
		fmt.Fprintf(b, "\"%v\"", value)
	}

	b.WriteByte('\t')
}

func prefixFieldClashes(data logrus.Fields) {
	if _, ok := data["time"]; ok {
		data["fields.time"] = data["time"]
	}

	if _, ok := data["msg"]; ok {
		data["fields.msg"] = data["msg"]
	}

	if _, ok := data["level"]; ok {
		data["fields.level"] = data["level"]
	}
}
