package recon

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ledger-reconciler/core/ledger"
	"ledger-reconciler/core/reconcile"
	"ledger-reconciler/core/storage"
	"ledger-reconciler/feature/history"
	"ledger-reconciler/feature/ingest"
	"ledger-reconciler/feature/report"
)

// RunResult is the full outcome of one reconciliation run.
type RunResult struct {
	RunID   string          `json:"run_id"`
	Summary report.Summary  `json:"summary"`
	Rows    []reconcile.Row `json:"rows"`
}

// Service orchestrates reconciliation runs: loading inputs, running the
// engine, assembling output and persisting the run record.
type Service struct {
	client storage.Client
	bucket string
	loader *ingest.Loader
	store  *history.Store
	logger *zap.Logger
	opts   reconcile.Options
}

// NewService creates a reconciliation service. client may be nil for
// local-only (CLI) use; db may be nil to disable run history.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, opts reconcile.Options) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		loader: ingest.NewLoader(logger),
		store:  history.NewStore(db),
		logger: logger,
		opts:   opts,
	}
}

// RunLocal reconciles inputs from disk. detailPath may be a single CSV or a
// folder of CSVs; aggregatorPath is the consolidated-ledger export.
func (s *Service) RunLocal(ctx context.Context, detailPath, aggregatorPath string) (*RunResult, error) {
	info, err := os.Stat(detailPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat detail path: %w", err)
	}

	var detail []ledger.Record
	if info.IsDir() {
		detail, err = s.loader.DetailFolder(detailPath)
	} else {
		detail, err = s.loader.DetailFile(detailPath)
	}
	if err != nil {
		return nil, s.failRun(ctx, detailPath, aggregatorPath, err)
	}

	aggregator, err := s.loader.AggregatorFile(aggregatorPath)
	if err != nil {
		return nil, s.failRun(ctx, detailPath, aggregatorPath, err)
	}

	return s.run(ctx, detail, aggregator, detailPath, aggregatorPath)
}

// RunRemote reconciles inputs from the storage bucket. detailPrefix names a
// folder of detail CSV objects; aggregatorObject the consolidated-ledger
// export. The assembled rows are archived back to the bucket as a CSV.
func (s *Service) RunRemote(ctx context.Context, detailPrefix, aggregatorObject string) (*RunResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("no storage client configured")
	}

	detail, err := s.loadRemoteDetail(ctx, detailPrefix)
	if err != nil {
		return nil, s.failRun(ctx, detailPrefix, aggregatorObject, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, aggregatorObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.failRun(ctx, detailPrefix, aggregatorObject,
			fmt.Errorf("failed to fetch aggregator object: %w", err))
	}
	defer obj.Close()

	aggregator, err := s.loader.AggregatorFromReader(obj, path.Base(aggregatorObject))
	if err != nil {
		return nil, s.failRun(ctx, detailPrefix, aggregatorObject, err)
	}

	result, err := s.run(ctx, detail, aggregator, detailPrefix, aggregatorObject)
	if err != nil {
		return nil, err
	}

	if err := s.archive(ctx, result); err != nil {
		// The run itself succeeded; a failed archive is logged, not fatal.
		s.logger.Error("Failed to archive run report", zap.String("run", result.RunID), zap.Error(err))
	}
	return result, nil
}

// ListRuns returns recent persisted runs, newest first.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]history.Run, error) {
	return s.store.List(ctx, limit)
}

func (s *Service) run(ctx context.Context, detail, aggregator []ledger.Record, detailSource, aggregatorSource string) (*RunResult, error) {
	res := reconcile.Reconcile(detail, aggregator, s.opts)

	result := &RunResult{
		RunID:   uuid.NewString(),
		Summary: report.Summarize(res),
		Rows:    reconcile.Assemble(res),
	}

	s.logger.Info("Reconciliation complete",
		zap.String("run", result.RunID),
		zap.Int("detail", result.Summary.DetailTotal),
		zap.Int("aggregator", result.Summary.AggregatorTotal),
		zap.Int("matched", result.Summary.Matched),
		zap.Float64("match_rate", result.Summary.MatchRate),
	)

	run := &history.Run{
		ID:                  result.RunID,
		DetailSource:        detailSource,
		AggregatorSource:    aggregatorSource,
		DetailTotal:         result.Summary.DetailTotal,
		AggregatorTotal:     result.Summary.AggregatorTotal,
		Matched:             result.Summary.Matched,
		UnmatchedDetail:     result.Summary.UnmatchedDetail,
		UnmatchedAggregator: result.Summary.UnmatchedAggregator,
		MatchRate:           result.Summary.MatchRate,
		Status:              history.StatusCompleted,
	}
	if err := s.store.Save(ctx, run); err != nil {
		// History is best-effort: the caller still gets the result.
		s.logger.Error("Failed to persist run", zap.String("run", result.RunID), zap.Error(err))
	}

	return result, nil
}

// failRun records a failed run before returning the error to the caller.
func (s *Service) failRun(ctx context.Context, detailSource, aggregatorSource string, err error) error {
	run := &history.Run{
		DetailSource:     detailSource,
		AggregatorSource: aggregatorSource,
		Status:           history.StatusFailed,
		Error:            err.Error(),
	}
	if saveErr := s.store.Save(ctx, run); saveErr != nil {
		s.logger.Error("Failed to persist failed run", zap.Error(saveErr))
	}
	return err
}

// loadRemoteDetail streams every CSV object under the prefix, in lexical
// key order, with the same per-file failure tolerance as folder imports.
func (s *Service) loadRemoteDetail(ctx context.Context, prefix string) ([]ledger.Record, error) {
	var keys []string
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list detail objects: %w", info.Err)
		}
		if strings.EqualFold(path.Ext(info.Key), ".csv") {
			keys = append(keys, info.Key)
		}
	}
	sort.Strings(keys)

	var records []ledger.Record
	loaded := 0
	for _, key := range keys {
		fileRecords, err := s.loadRemoteObject(ctx, key)
		if err != nil {
			s.logger.Error("Skipping detail object", zap.String("object", key), zap.Error(err))
			continue
		}
		if len(fileRecords) == 0 {
			continue
		}
		records = append(records, fileRecords...)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("no valid csv objects under %s", prefix)
	}
	return records, nil
}

func (s *Service) loadRemoteObject(ctx context.Context, key string) ([]ledger.Record, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return s.loader.DetailFromReader(obj, path.Base(key))
}

// archive uploads the assembled rows as a CSV report object.
func (s *Service) archive(ctx context.Context, result *RunResult) error {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, result.Rows); err != nil {
		return err
	}

	objectName := "reports/" + result.RunID + ".csv"
	_, err := s.client.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	s.logger.Info("Run report archived", zap.String("object", objectName))
	return nil
}
