package fcmsend

// Version
const (
	Version = "v0.1.0"
)

// Fixed content of the sample notification.
const (
	NotificationTitle = "FCM Notification"
	NotificationBody  = "Notification from FCM"
)

// Platform override values for override messages.
const (
	AndroidClickAction = "android.intent.action.MAIN"
	ApnsPriorityHigh   = "10"
	ApnsBadgeCount     = 1
)
