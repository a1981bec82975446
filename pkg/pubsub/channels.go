package pubsub

import (
	"fmt"
	"strings"
)

// Channel naming conventions for graph events.
const (
	// ChannelUserNotifications carries notifications addressed to one user.
	ChannelUserNotifications = "notifications:user:%s"
)

// Event types.
const (
	EventNotificationCreated = "notification.created"
)

// UserNotificationsChannel returns the channel for a recipient's notifications.
func UserNotificationsChannel(userID string) string {
	return fmt.Sprintf(ChannelUserNotifications, userID)
}

// channelToTopicAndKey converts a Redis-style channel to a Kafka topic and message key.
//
//	"notifications:user:U123" → topic: "notifications", key: "U123"
func channelToTopicAndKey(channel string) (topic, key string, err error) {
	parts := strings.Split(channel, ":")
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("invalid channel format: %s", channel)
	}
	return parts[0], parts[2], nil
}
