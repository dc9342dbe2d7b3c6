package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnection_success"

	ActionRunSimulation     = "run_simulation"
	ActionRecordOutcome     = "record_order_outcome"
	ActionPublishCompletion = "publish_simulation_completed"
	ActionReadReference     = "read_reference_data"

	ActionDatabaseTransactionFailed = "database_transaction_failed"
	ActionCacheFailed               = "simulation_cache_failed"
)
