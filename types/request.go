package types

type IngestRequest struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type QueryRequest struct {
	Query string `json:"query"`
}
