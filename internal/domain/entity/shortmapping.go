package entity

// ShortMapping is the persisted association between a short identifier and its
// target resource. Exactly one of FullURL and StorageKey is set: FullURL for a
// direct URL redirect, StorageKey for a file held in the blob store.
type ShortMapping struct {
	ShortID    string `json:"short_id" dynamodbav:"short_id"`
	Owner      string `json:"username" dynamodbav:"username"`
	FullURL    string `json:"full_url,omitempty" dynamodbav:"full_url,omitempty"`
	StorageKey string `json:"file_s3_key,omitempty" dynamodbav:"file_s3_key,omitempty"`
	CreatedAt  string `json:"created_at" dynamodbav:"created_at"`
}

// IsURL reports whether the mapping redirects to a plain URL.
func (m ShortMapping) IsURL() bool {
	return m.FullURL != ""
}

// IsFile reports whether the mapping redirects to a stored file.
func (m ShortMapping) IsFile() bool {
	return m.StorageKey != ""
}
