package types

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// IngestResult is the tagged outcome of one ingestion run. The pipeline
// never raises past its boundary; failures land in Message.
type IngestResult struct {
	Status      string `json:"status"`
	ChunksCount int    `json:"chunks_count"`
	Message     string `json:"message,omitempty"`
}

// Citation points at a source referenced by retrieved evidence. Rank is the
// position of the source's first appearance in the ranked hits.
type Citation struct {
	Rank   int    `json:"rank"`
	Source string `json:"source"`
}

// QueryResult is the answer pipeline's output. RetrievalLatencyMS covers
// the similarity search only, not generation.
type QueryResult struct {
	Answer             string     `json:"answer"`
	RetrievalLatencyMS float64    `json:"retrieval_latency_ms"`
	Citations          []Citation `json:"citations"`
}

type EvalDetail struct {
	Question string `json:"question"`
	Success  bool   `json:"success"`
}

type EvalResult struct {
	Accuracy float64      `json:"accuracy"`
	Details  []EvalDetail `json:"details"`
}

type IngestedDocsResponse struct {
	Documents []string `json:"documents"`
}

type DataResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
