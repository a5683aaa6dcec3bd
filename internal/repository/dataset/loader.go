package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/amanahlab/sahabat/internal/domain"
)

// Loader reads the JSON corpora and intent rules from disk. Missing files
// load as empty lists so the service can start on a partial dataset; a file
// that exists but does not parse is an error.
type Loader struct {
	logger *zap.Logger
}

// New creates a dataset loader.
func New(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadDoa reads the doa corpus.
func (l *Loader) LoadDoa(path string) ([]domain.Item, error) {
	var dtos []doaDTO
	if err := l.readJSON(path, &dtos); err != nil {
		return nil, err
	}

	items := make([]domain.Item, len(dtos))
	for i, d := range dtos {
		items[i] = domain.NewDoa(d.ID, d.Judul, d.Arti, d.Latin)
	}
	return items, nil
}

// LoadHadis reads the hadis corpus.
func (l *Loader) LoadHadis(path string) ([]domain.Item, error) {
	var dtos []hadisDTO
	if err := l.readJSON(path, &dtos); err != nil {
		return nil, err
	}

	items := make([]domain.Item, len(dtos))
	for i, h := range dtos {
		items[i] = domain.NewHadis(h.ID, h.Tema, h.Arti, h.KataKunci)
	}
	return items, nil
}

// LoadIntents reads the intent rule table, preserving file order.
func (l *Loader) LoadIntents(path string) ([]domain.IntentRule, error) {
	var dtos []intentDTO
	if err := l.readJSON(path, &dtos); err != nil {
		return nil, err
	}

	rules := make([]domain.IntentRule, len(dtos))
	for i, d := range dtos {
		rules[i] = domain.IntentRule{
			Name:           d.Name,
			Type:           domain.Source(d.Type),
			Triggers:       d.Keywords,
			CanonicalQuery: d.CanonicalQuery,
		}
	}
	return rules, nil
}

func (l *Loader) readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("dataset file missing, loading empty", zap.String("path", path))
			return nil
		}
		return fmt.Errorf("read dataset %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return nil
}
