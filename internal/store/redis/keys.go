package redis

const (
	// KeyPrefixMetadata is the prefix for cached oEmbed metadata keys
	KeyPrefixMetadata = "songjournal:oembed:"
)

// MetadataKey returns the Redis key for cached metadata of a track
func MetadataKey(trackID string) string {
	return KeyPrefixMetadata + trackID
}
