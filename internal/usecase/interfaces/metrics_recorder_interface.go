package interfaces

// IMetricsRecorder receives domain counters. A nil recorder is allowed by
// every use case.
type IMetricsRecorder interface {
	EstimateCreated()
	EstimateRemoved()
	PriceUpdated()
	StorageError(op string)
	ExportRendered(format string, ok bool)
}
