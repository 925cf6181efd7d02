package types

// Chunk is a fixed-size overlapping window of a document's extracted text.
// Offset is the byte index in the original text where the window begins.
type Chunk struct {
	Text   string
	Offset int
}

// ChunkMetadata is stored alongside each chunk in the vector store.
type ChunkMetadata struct {
	Source string `json:"source"`
	Index  int    `json:"index"`
}

// RetrievalHit is one ranked result of a similarity query. Rank is 1-based.
type RetrievalHit struct {
	Content  string
	Source   string
	Index    int
	Rank     int
	Distance float32
}

// IngestedSource is the side-index record for one successfully ingested
// document. Name is the deduplication key.
type IngestedSource struct {
	Name       string `bson:"_id" json:"name"`
	URL        string `bson:"url" json:"url"`
	ChunkCount int    `bson:"chunk_count" json:"chunk_count"`
	CreatedAt  int64  `bson:"created_at" json:"created_at"`
}

// ChunkingConfig contains configuration options for the chunker.
type ChunkingConfig struct {
	ChunkSize int // Maximum size for text chunks
	Overlap   int // Size of overlap between consecutive chunks
}

// QAPair is one question/expected-keyword entry of the evaluation set.
type QAPair struct {
	Question string `mapstructure:"question" json:"question"`
	Keyword  string `mapstructure:"keyword" json:"keyword"`
}
