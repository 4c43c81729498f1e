package pipeline

// RecognitionMessage drives the recognition queue: one message per queued
// task awaiting OCR and extraction.
type RecognitionMessage struct {
	TaskID string `json:"task_id"`
}

// PostProcessMessage drives the post-processing queue, currently fingerprint
// recording after a task first completes.
type PostProcessMessage struct {
	TaskID string `json:"task_id"`
}
