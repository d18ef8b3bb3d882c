package models

// Clip is one uploaded video. ID is the storage object key
// ("<code>-<disambiguator>-<sessionID>.<ext>") and is unique per clip. Many
// clips share one Code; the thumbnail lives at ID + ".jpg" in the thumbnail
// bucket. Clips are immutable once committed.
type Clip struct {
	ID        string
	Code      string
	AccountID string
	CreatedAt int64 // ms since epoch
}

// FeedClip is a clip prepared for the feed response: the owner is stripped
// and a base64-encoded thumbnail is attached.
type FeedClip struct {
	ID              string
	Code            string
	CreatedAt       int64
	ThumbnailBase64 string
}

// UploadTarget tells a client where to PUT the raw media bytes.
type UploadTarget struct {
	Key string
	URL string
}
