package config

// StorageConfig contains attachment blob storage configuration.
type StorageConfig struct {
	// AttachmentsDir is the directory where attachment blobs are stored.
	AttachmentsDir string `env:"STORAGE_ATTACHMENTS_DIR" envDefault:"./data/attachments"`

	// MaxUploadBytes caps the size of a single attachment upload.
	MaxUploadBytes int64 `env:"STORAGE_MAX_UPLOAD_BYTES" envDefault:"26214400"`
}
