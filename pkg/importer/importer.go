// Package importer reconstructs structured resume fields from uploaded
// PDF/DOCX documents. It is a single best-effort heuristic pass: pattern
// matching over unstructured text, no learning, no confidence scores. The
// pipeline either fails to load the document or succeeds with a record whose
// undetected fields are simply empty.
package importer

// Importer is the import pipeline entry point: load pages, aggregate the
// corpus, run every field extractor, assemble the record.
type Importer struct {
	loader *Loader
}

func New() *Importer {
	return &Importer{loader: NewLoader()}
}

// NewWithMaxPages overrides the PDF page cap; n <= 0 keeps the default.
func NewWithMaxPages(n int) *Importer {
	im := New()
	if n > 0 {
		im.loader.MaxPages = n
	}
	return im
}

// Import runs the whole pipeline on one uploaded file. The only possible
// error wraps ErrDocumentLoad; once the corpus is built, extraction cannot
// fail, only under-populate.
func (im *Importer) Import(filename string, data []byte) (ExtractedRecord, error) {
	pages, err := im.loader.Pages(filename, data)
	if err != nil {
		return ExtractedRecord{}, err
	}
	return Extract(BuildCorpus(pages)), nil
}

// Extract runs every field extractor over an already-built corpus. The
// extractors are independent pure functions writing disjoint fields, so
// their order does not matter. Deterministic: the same corpus always yields
// the same record.
func Extract(corpus string) ExtractedRecord {
	rec := NewExtractedRecord()
	rec.PersonalInfo = PersonalInfo{
		FullName: extractName(corpus),
		Email:    extractEmail(corpus),
		Phone:    extractPhone(corpus),
		Location: extractLocation(corpus),
	}
	rec.Skills = extractSkills(corpus)
	rec.Experiences = extractExperiences(corpus)
	rec.Education = extractEducation(corpus)
	rec.Projects = extractProjects(corpus)
	return rec
}
