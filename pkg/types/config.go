// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by collaborators reached over
// the network.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "styloguard/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// AnnotatorBackend selects the NLP annotator implementation.
type AnnotatorBackend string

const (
	// AnnotatorNative runs tokenisation, tagging and NER in-process.
	AnnotatorNative AnnotatorBackend = "native"
	// AnnotatorRemote posts text to an HTTP annotation service.
	AnnotatorRemote AnnotatorBackend = "remote"
)

// AnnotatorConfig holds settings for the NLP annotation collaborator.
type AnnotatorConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Backend is "native" (default) or "remote".
	Backend AnnotatorBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Endpoint is the URL of the remote annotation service. Required when
	// Backend is "remote".
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" mapstructure:"endpoint"`

	// APIKey is sent as a bearer token to the remote service when set.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// MaxRetries bounds HTTP 429 retries (0 uses the default of 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Image is the container image of the annotation service started by
	// "styloguard annotator start".
	Image string `json:"image,omitempty" yaml:"image,omitempty" mapstructure:"image"`

	// Port is the host port the annotation service is published on.
	Port int `json:"port,omitempty" yaml:"port,omitempty" mapstructure:"port"`
}

// SessionBackend selects the hugot inference runtime.
type SessionBackend string

const (
	SessionGo  SessionBackend = "go"
	SessionORT SessionBackend = "ort"
)

// EmbeddingConfig holds settings for the masked-embedding scorer.
type EmbeddingConfig struct {
	// ModelPath is a local directory containing model.onnx and tokenizer.json.
	// When empty, the model is expected under CacheDir/<Repo with "/"
	// replaced by "_">, e.g. models/sentence-transformers_all-MiniLM-L6-v2.
	ModelPath string `json:"model_path" yaml:"model_path" mapstructure:"model_path"`

	// Repo is the HuggingFace repository used by "model pull"
	// (e.g. "sentence-transformers/all-MiniLM-L6-v2").
	Repo string `json:"repo" yaml:"repo" mapstructure:"repo"`

	// CacheDir is where pulled models are stored.
	CacheDir string `json:"cache_dir" yaml:"cache_dir" mapstructure:"cache_dir"`

	// MaxSequenceLength is the encoder context limit in subword tokens (default 512).
	MaxSequenceLength int `json:"max_sequence_length" yaml:"max_sequence_length" mapstructure:"max_sequence_length"`

	// Stride is the overlap between consecutive windows in tokens (default 50).
	Stride int `json:"stride" yaml:"stride" mapstructure:"stride"`

	// Session selects the inference runtime: "go" (default) or "ort".
	Session SessionBackend `json:"session" yaml:"session" mapstructure:"session"`

	// OrtLibraryPath points at libonnxruntime when Session is "ort".
	OrtLibraryPath string `json:"ort_library_path,omitempty" yaml:"ort_library_path,omitempty" mapstructure:"ort_library_path"`

	// HubToken authenticates model downloads from the HuggingFace hub.
	HubToken string `json:"-" yaml:"-" mapstructure:"hub_token"`
}

// StoreConfig holds settings for the essay store.
type StoreConfig struct {
	// DataDir is the base directory for the database and exports.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "text" (default) or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all stage configurations.
type Config struct {
	Annotator AnnotatorConfig `json:"annotator" yaml:"annotator" mapstructure:"annotator"`
	Embedding EmbeddingConfig `json:"embedding" yaml:"embedding" mapstructure:"embedding"`
	Store     StoreConfig     `json:"store" yaml:"store" mapstructure:"store"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}
