package report

import (
	"encoding/xml"
	"io"
	"strconv"

	"hphpa/internal/models"
)

type checkstyleReport struct {
	XMLName xml.Name         `xml:"checkstyle"`
	Files   []checkstyleFile `xml:"file"`
}

type checkstyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkstyleError `xml:"error"`
}

type checkstyleError struct {
	Line     string `xml:"line,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// Checkstyle writes the index as a Checkstyle XML document
func Checkstyle(w io.Writer, index *models.ViolationIndex) error {
	doc := checkstyleReport{}
	for _, file := range index.Files() {
		cf := checkstyleFile{Name: file.File}
		for _, line := range file.Lines {
			for _, v := range line.Violations {
				cf.Errors = append(cf.Errors, checkstyleError{
					Line:     strconv.Itoa(line.Line),
					Severity: "error",
					Message:  v.Message,
					Source:   string(v.Source),
				})
			}
		}
		doc.Files = append(doc.Files, cf)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
