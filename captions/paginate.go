package captions

// Page is one bounded window over the chunked transcript.
type Page struct {
	Chunks      []Chunk
	NextIndex   *int
	TotalChunks int
}

// paginate splits text into consecutive chunks of chunkSize characters
// (runes, not bytes) and returns up to maxChunks of them starting at
// startIndex. Running past the end yields an empty page, never an error;
// the caller validates the parameters beforehand.
func paginate(text string, chunkSize, maxChunks, startIndex int) Page {
	runes := []rune(text)

	totalChunks := len(runes) / chunkSize
	if len(runes)%chunkSize != 0 {
		totalChunks++
	}

	page := Page{
		Chunks:      []Chunk{},
		TotalChunks: totalChunks,
	}

	if startIndex >= totalChunks {
		return page
	}

	// Clamp before adding: maxChunks may be near MaxInt and the sum must
	// not wrap.
	end := totalChunks
	if maxChunks < totalChunks-startIndex {
		end = startIndex + maxChunks
	}

	for index := startIndex; index < end; index++ {
		lo := index * chunkSize
		hi := lo + chunkSize
		if hi > len(runes) {
			hi = len(runes)
		}
		page.Chunks = append(page.Chunks, Chunk{
			Index: index,
			Text:  string(runes[lo:hi]),
		})
	}

	if end < totalChunks {
		next := end
		page.NextIndex = &next
	}

	return page
}
