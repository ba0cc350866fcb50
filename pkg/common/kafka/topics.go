package kafkacommon

const (
	// TopicTaskLifecycle carries task enqueue/completion events
	TopicTaskLifecycle string = "fleet.tasks.lifecycle"
	// TopicDeviceLifecycle carries device enrollment events
	TopicDeviceLifecycle string = "fleet.devices.lifecycle"
)
