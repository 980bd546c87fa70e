package ingest

import (
	"strings"

	"docadmin/internal/model"
)

type classifyRule struct {
	keywords []string
	docType  model.DocumentType
}

// classifyRules is evaluated top to bottom; the order matters because a
// filename may contain keywords of several rules.
var classifyRules = []classifyRule{
	{keywords: []string{"tds", "technical data"}, docType: model.TypeTDS},
	{keywords: []string{"esr", "evaluation report"}, docType: model.TypeESR},
	{keywords: []string{"msds", "safety data"}, docType: model.TypeMSDS},
	{keywords: []string{"leed"}, docType: model.TypeLEED},
	{keywords: []string{"installation", "install"}, docType: model.TypeInstallation},
	{keywords: []string{"warranty"}, docType: model.TypeWarranty},
	{keywords: []string{"acoustic", "esl"}, docType: model.TypeAcoustic},
	{keywords: []string{"spec", "3-part"}, docType: model.TypePartSpec},
}

// DefaultType is returned when no rule matches.
const DefaultType = model.TypeTDS

// Classify infers the document type from a filename. Matching is a
// case-insensitive substring test and the first matching rule wins.
func Classify(filename string) model.DocumentType {
	lower := strings.ToLower(filename)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.docType
			}
		}
	}
	return DefaultType
}
