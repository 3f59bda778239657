package analyzer

import (
	"hphpa/internal/models"
	"hphpa/internal/rules"

	"github.com/hashicorp/go-hclog"
)

// Aggregate classifies every record of the log and groups the reported
// violations by file and line, in log order.
func Aggregate(log *models.RawLog, classifier *rules.Classifier, logger hclog.Logger) *models.ViolationIndex {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("aggregator")

	index := models.NewViolationIndex()
	if log == nil {
		return index
	}

	logger.Debug("starting aggregation", "categories", len(log.Groups), "records", log.RecordCount())

	for _, group := range log.Groups {
		if classifier.IsBlacklisted(group.Category) {
			logger.Debug("skipping blacklisted category", "category", group.Category, "records", len(group.Records))
			continue
		}

		reported := 0
		for _, record := range group.Records {
			violation, ok := classifier.Classify(record)
			if !ok {
				continue
			}
			index.Add(record.File, record.Line, violation)
			reported++
		}

		logger.Debug("processed category", "category", group.Category, "records", len(group.Records), "violations", reported)
	}

	logger.Debug("aggregation finished", "violations", index.Count(), "files", index.FileCount())
	return index
}
