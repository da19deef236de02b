package importer

import "strings"

// BuildCorpus joins per-page text into the single string every extractor
// scans. Pages are joined with one space, in page order. Pure function:
// empty input yields an empty corpus.
func BuildCorpus(pages []string) string {
	return strings.Join(pages, " ")
}
