package badger

// Key prefixes for different data types
const (
	stemPrefix = "stem:"
	infoKey    = "dictinfo"
)

// makeStemKey generates a key for a stem by word.
// Format: stem:word
// Stems therefore iterate in byte order of the word.
func makeStemKey(word string) []byte {
	buf := make([]byte, len(stemPrefix)+len(word))
	offset := copy(buf, stemPrefix)
	copy(buf[offset:], word)
	return buf
}

// makeInfoKey generates the key holding the dictionary info record.
func makeInfoKey() []byte {
	return []byte(infoKey)
}
