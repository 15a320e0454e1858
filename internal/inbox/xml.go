package inbox

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"

	"smsledger/internal/models"
)

// XMLBackupSource reads an "SMS Backup & Restore" XML export.
type XMLBackupSource struct {
	path   string
	sender string
}

// NewXMLBackupSource creates a source over the XML file at path. A non-empty
// sender keeps only messages from that address.
func NewXMLBackupSource(path, sender string) *XMLBackupSource {
	return &XMLBackupSource{path: path, sender: sender}
}

// Supported reports true; the export is readable on any platform.
func (s *XMLBackupSource) Supported() bool { return true }

// Messages decodes the backup and returns its messages in file order.
func (s *XMLBackupSource) Messages(ctx context.Context, sinceMillis int64) ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var backup models.SMSBackup
	if err := xml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("error parsing XML: %w", err)
	}

	records := make([]Record, 0, len(backup.SMS))
	for _, sms := range backup.SMS {
		if s.sender != "" && sms.Address != s.sender {
			continue
		}
		if ms, err := parseMillis(sms.Date); err == nil && ms < sinceMillis {
			continue
		}
		records = append(records, Record{Body: sms.Body, Date: sms.Date})
	}
	return records, nil
}
