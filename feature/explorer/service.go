package explorer

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"

	"genie-graph/core/check"
	"genie-graph/core/convert"
	"genie-graph/core/genie"
	"genie-graph/core/graph"
	"genie-graph/core/source"
	"genie-graph/core/storage"
	"genie-graph/feature/explorer/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNotBuilt is returned by query methods before the first successful
// conversion run.
var ErrNotBuilt = errors.New("graph not built yet")

// Service serves graph queries over the latest conversion run.
type Service struct {
	src    source.DumpSource
	client storage.Client
	bucket string
	cfg    convert.Config
	logger *zap.Logger

	// group collapses concurrent rebuild requests into one run.
	group singleflight.Group

	mu       sync.RWMutex
	dump     *genie.Dump
	registry *graph.Registry
	report   *convert.Report
}

// NewService creates a new explorer service.
func NewService(src source.DumpSource, client storage.Client, bucket string, cfg convert.Config, logger *zap.Logger) *Service {
	return &Service{
		src:    src,
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
	}
}

// Rebuild loads the dump and runs the conversion pipeline. Concurrent
// calls share a single run and all receive its report. Query methods
// keep serving the previous graph until the new one is swapped in.
func (s *Service) Rebuild(ctx context.Context) (*convert.Report, error) {
	v, err, _ := s.group.Do("rebuild", func() (interface{}, error) {
		dump, err := s.src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load dump from %s: %w", s.src.Name(), err)
		}

		registry, report, err := convert.Run(dump, s.logger)
		if err != nil {
			return nil, err
		}
		report.Source = s.src.Name()

		s.mu.Lock()
		s.dump = dump
		s.registry = registry
		s.report = report
		s.mu.Unlock()

		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*convert.Report), nil
}

// Status reports the state of the currently served graph.
func (s *Service) Status() models.GraphStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return models.GraphStatus{}
	}
	return models.GraphStatus{
		Built:  true,
		RunID:  s.report.RunID,
		Source: s.report.Source,
		Counts: s.report.Counts,
	}
}

// UnitLines lists every unit line, the villager group included.
func (s *Service) UnitLines() ([]models.LineSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	out := make([]models.LineSummary, 0, len(s.registry.UnitLines))
	for _, id := range s.registry.SortedUnitLineIDs() {
		out = append(out, lineSummary(s.registry.UnitLines[id]))
	}
	return out, nil
}

// UnitLine returns one unit line by its line id, or nil when unknown.
func (s *Service) UnitLine(id int) (*models.LineDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	l, ok := s.registry.UnitLinesByLineID[id]
	if !ok {
		// Extra lines and the villager group are only keyed by head id.
		if cand, found := s.registry.UnitLines[id]; found && cand.ID == id {
			l, ok = cand, true
		}
	}
	if !ok {
		return nil, nil
	}
	return lineDetail(l), nil
}

// BuildingLines lists every building line.
func (s *Service) BuildingLines() ([]models.LineSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	out := make([]models.LineSummary, 0, len(s.registry.BuildingLines))
	for _, id := range s.registry.SortedBuildingLineIDs() {
		out = append(out, lineSummary(s.registry.BuildingLines[id]))
	}
	return out, nil
}

// BuildingLine returns one building line by its line id, or nil when
// unknown.
func (s *Service) BuildingLine(id int) (*models.LineDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	l, ok := s.registry.BuildingLines[id]
	if !ok {
		return nil, nil
	}
	return lineDetail(l), nil
}

// TechGroups lists every classified tech group.
func (s *Service) TechGroups() ([]models.TechSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	out := make([]models.TechSummary, 0, len(s.registry.TechGroups))
	for _, id := range s.registry.SortedTechGroupIDs() {
		tg := s.registry.TechGroups[id]
		sum := models.TechSummary{TechID: tg.TechID, Kind: tg.Kind.String()}
		if tech, ok := s.dump.Tech(tg.TechID); ok {
			sum.Name = tech.Name
		}
		out = append(out, sum)
	}
	return out, nil
}

// TechGroup returns one tech group by its tech id, or nil when unknown.
func (s *Service) TechGroup(id int) (*models.TechDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	tg, ok := s.registry.TechGroups[id]
	if !ok {
		return nil, nil
	}
	detail := &models.TechDetail{TechSnapshot: tg.Snapshot()}
	if tech, found := s.dump.Tech(tg.TechID); found {
		detail.Name = tech.Name
	}
	return detail, nil
}

// CivGroups lists every civ group.
func (s *Service) CivGroups() ([]models.CivSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	out := make([]models.CivSummary, 0, len(s.registry.CivGroups))
	for _, id := range s.registry.SortedCivGroupIDs() {
		sum := models.CivSummary{CivID: id}
		if civ, ok := s.dump.Civilization(id); ok {
			sum.Name = civ.Name
		}
		out = append(out, sum)
	}
	return out, nil
}

// CivGroup returns one civ group by its civ index, or nil when unknown.
func (s *Service) CivGroup(id int) (*models.CivDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	c, ok := s.registry.CivGroups[id]
	if !ok {
		return nil, nil
	}
	detail := &models.CivDetail{CivSnapshot: c.Snapshot()}
	if civ, found := s.dump.Civilization(id); found {
		detail.Name = civ.Name
	}
	return detail, nil
}

// Terrains lists every terrain group.
func (s *Service) Terrains() ([]graph.TerrainSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	out := make([]graph.TerrainSnapshot, 0, len(s.registry.TerrainGroups))
	for _, id := range s.registry.SortedTerrainGroupIDs() {
		out = append(out, s.registry.TerrainGroups[id].Snapshot())
	}
	return out, nil
}

// Check validates the served graph against the dump it was built from.
func (s *Service) Check() (check.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return check.Report{}, ErrNotBuilt
	}
	return check.All(s.dump, s.registry), nil
}

// Snapshot builds the stable document form of the served graph.
func (s *Service) Snapshot() (*graph.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, ErrNotBuilt
	}
	snap := graph.BuildSnapshot(s.registry)
	snap.RunID = s.report.RunID
	snap.Source = s.report.Source
	return snap, nil
}

// UploadSnapshot writes the served graph to object storage under a
// per-run key and reports what was written.
func (s *Service) UploadSnapshot(ctx context.Context) (*models.SnapshotUpload, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	object := path.Join(s.cfg.SnapshotPrefix, snap.RunID+".json")
	size, err := convert.UploadSnapshot(ctx, s.client, s.bucket, object, snap)
	if err != nil {
		return nil, err
	}
	return &models.SnapshotUpload{Object: object, Bytes: size}, nil
}

// ListSnapshots lists the snapshot objects stored in the bucket. A
// missing bucket yields an empty list, not an error.
func (s *Service) ListSnapshots(ctx context.Context) ([]models.SnapshotInfo, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return []models.SnapshotInfo{}, nil
	}

	infos := []models.SnapshotInfo{}
	opts := minio.ListObjectsOptions{Prefix: s.cfg.SnapshotPrefix, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		infos = append(infos, models.SnapshotInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return infos, nil
}

func lineSummary(l *graph.Line) models.LineSummary {
	sum := models.LineSummary{
		LineID:     l.ID,
		Kind:       l.Kind.String(),
		HeadUnitID: l.HeadUnitID(),
		UnitCount:  len(l.UnitIDs()),
	}
	if head := l.Head(); head != nil {
		sum.Name = head.Name
	}
	return sum
}

func lineDetail(l *graph.Line) *models.LineDetail {
	detail := &models.LineDetail{LineSnapshot: l.Snapshot()}
	if head := l.Head(); head != nil {
		detail.Name = head.Name
	}
	return detail
}
