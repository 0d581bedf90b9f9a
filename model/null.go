package model

// NullEvent ...
type NullEvent struct {
	Valid bool
	Event Event
}

// NullNotificationRule ...
type NullNotificationRule struct {
	Valid bool
	Rule  NotificationRule
}

// NullNotificationLog ...
type NullNotificationLog struct {
	Valid bool
	Log   NotificationLog
}

// NullSubscriber ...
type NullSubscriber struct {
	Valid      bool
	Subscriber Subscriber
}
