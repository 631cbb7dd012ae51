package cache

const (
	KeyPrefix       = "linkbundles:"
	KeyPrefixVanity = KeyPrefix + "vanity:"
	KeyPrefixID     = KeyPrefix + "id:"
)

// VanityKey holds the serialized bundle.
func VanityKey(vanityURL string) string {
	return KeyPrefixVanity + vanityURL
}

// IDKey maps a bundle id to the vanity URL it was cached under, so an
// update that renames the vanity URL can drop the old entry.
func IDKey(id string) string {
	return KeyPrefixID + id
}
