package explorer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"genie-graph/core/convert"
	"genie-graph/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(client *mocks.Client) *Service {
	cfg := convert.Config{SnapshotPrefix: "snapshots/"}
	return NewService(&fakeSource{dump: fixtureDump()}, client, "gamedata", cfg, zap.NewNop())
}

func TestServiceRebuild(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	report, err := svc.Rebuild(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "test:dump", report.Source)
	assert.Equal(t, 2, report.Counts.UnitLines)
	assert.Equal(t, 2, report.Counts.BuildingLines)
	assert.Equal(t, 1, report.Counts.VillagerGroups)
	assert.Equal(t, 1, report.Counts.TerrainGroups)
	assert.Equal(t, 2, report.Counts.TechGroups)
	assert.Equal(t, 2, report.Counts.CivGroups)

	status := svc.Status()
	assert.True(t, status.Built)
	assert.Equal(t, report.RunID, status.RunID)
	assert.Equal(t, "test:dump", status.Source)
	assert.Equal(t, report.Counts, status.Counts)
}

func TestServiceRebuildSourceError(t *testing.T) {
	svc := NewService(&fakeSource{err: errors.New("connection refused")}, new(mocks.Client), "gamedata", convert.Config{}, zap.NewNop())

	_, err := svc.Rebuild(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load dump from test:dump")

	status := svc.Status()
	assert.False(t, status.Built)
}

func TestServiceRebuildConcurrent(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	var wg sync.WaitGroup
	reports := make([]*convert.Report, 4)
	for i := range reports {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			report, err := svc.Rebuild(context.Background())
			assert.NoError(t, err)
			reports[i] = report
		}(i)
	}
	wg.Wait()

	for _, report := range reports {
		require.NotNil(t, report)
	}
}

func TestServiceQueriesBeforeRebuild(t *testing.T) {
	svc := newTestService(new(mocks.Client))

	assert.False(t, svc.Status().Built)

	_, err := svc.UnitLines()
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = svc.UnitLine(74)
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = svc.BuildingLines()
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = svc.TechGroups()
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = svc.CivGroups()
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = svc.Terrains()
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = svc.Check()
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = svc.Snapshot()
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = svc.UploadSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestServiceUnitLines(t *testing.T) {
	svc := newTestService(new(mocks.Client))
	_, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	lines, err := svc.UnitLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 74, lines[0].LineID)
	assert.Equal(t, "unit_line", lines[0].Kind)
	assert.Equal(t, "Militia", lines[0].Name)
	assert.Equal(t, 74, lines[0].HeadUnitID)
	assert.Equal(t, 2, lines[0].UnitCount)

	assert.Equal(t, 118, lines[1].LineID)
	assert.Equal(t, "villager_group", lines[1].Kind)
	assert.Equal(t, "Villager (Male)", lines[1].Name)
	assert.Equal(t, 2, lines[1].UnitCount)
}

func TestServiceUnitLine(t *testing.T) {
	svc := newTestService(new(mocks.Client))
	_, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	line, err := svc.UnitLine(74)
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, "Militia", line.Name)
	assert.Equal(t, []int{74, 75}, line.UnitIDs)
	require.NotNil(t, line.CreatedAt)
	assert.Equal(t, "building", line.CreatedAt.Domain)
	assert.Equal(t, 12, line.CreatedAt.ID)

	// The villager group is only keyed by its group id.
	group, err := svc.UnitLine(118)
	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Equal(t, "villager_group", group.Kind)
	assert.Equal(t, []int{83, 293}, group.TaskLineIDs)

	missing, err := svc.UnitLine(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestServiceBuildingLines(t *testing.T) {
	svc := newTestService(new(mocks.Client))
	_, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	lines, err := svc.BuildingLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 12, lines[0].LineID)
	assert.Equal(t, "Barracks", lines[0].Name)
	assert.Equal(t, 2, lines[0].UnitCount)
	assert.Equal(t, 109, lines[1].LineID)

	barracks, err := svc.BuildingLine(12)
	require.NoError(t, err)
	require.NotNil(t, barracks)
	assert.Equal(t, []int{12, 20}, barracks.UnitIDs)
	assert.Equal(t, []int{100}, barracks.ResearchableIDs)
	assert.Equal(t, "natural", barracks.GarrisonMode)
	require.NotNil(t, barracks.CreatedAt)
	assert.Equal(t, "villager", barracks.CreatedAt.Domain)

	missing, err := svc.BuildingLine(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestServiceTechGroups(t *testing.T) {
	svc := newTestService(new(mocks.Client))
	_, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	techs, err := svc.TechGroups()
	require.NoError(t, err)
	require.Len(t, techs, 2)
	assert.Equal(t, 100, techs[0].TechID)
	assert.Equal(t, "unit_line_upgrade", techs[0].Kind)
	assert.Equal(t, "Man-at-Arms", techs[0].Name)
	assert.Equal(t, 101, techs[1].TechID)
	assert.Equal(t, "age_upgrade", techs[1].Kind)

	upgrade, err := svc.TechGroup(100)
	require.NoError(t, err)
	require.NotNil(t, upgrade)
	assert.Equal(t, 74, upgrade.LineID)
	assert.Equal(t, 75, upgrade.TargetID)
	require.NotNil(t, upgrade.ResearchedAt)
	assert.Equal(t, 12, upgrade.ResearchedAt.ID)

	missing, err := svc.TechGroup(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestServiceCivGroups(t *testing.T) {
	svc := newTestService(new(mocks.Client))
	_, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	civs, err := svc.CivGroups()
	require.NoError(t, err)
	require.Len(t, civs, 2)
	assert.Equal(t, "Gaia", civs[0].Name)
	assert.Equal(t, "Britons", civs[1].Name)

	britons, err := svc.CivGroup(1)
	require.NoError(t, err)
	require.NotNil(t, britons)
	assert.Equal(t, 254, britons.TechTreeID)
	assert.Equal(t, 399, britons.TeamBonusID)

	missing, err := svc.CivGroup(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestServiceTerrains(t *testing.T) {
	svc := newTestService(new(mocks.Client))
	_, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	terrains, err := svc.Terrains()
	require.NoError(t, err)
	require.Len(t, terrains, 1)
	assert.Equal(t, 0, terrains[0].TerrainID)
	assert.Equal(t, "Grass", terrains[0].Name)
}

func TestServiceCheck(t *testing.T) {
	svc := newTestService(new(mocks.Client))
	_, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	report, err := svc.Check()
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Len(t, report.Results, 4)
}

func TestServiceSnapshot(t *testing.T) {
	svc := newTestService(new(mocks.Client))
	report, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, report.RunID, snap.RunID)
	assert.Equal(t, "test:dump", snap.Source)
	assert.Len(t, snap.UnitLines, 2)
	assert.Len(t, snap.BuildingLines, 2)
	assert.Len(t, snap.TechGroups, 2)
}

func TestServiceUploadSnapshot(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "gamedata", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	svc := newTestService(mockClient)
	report, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	upload, err := svc.UploadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "snapshots/"+report.RunID+".json", upload.Object)
	assert.Greater(t, upload.Bytes, int64(0))

	mockClient.AssertExpectations(t)
}

func TestServiceListSnapshots(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "snapshots/run-1.json", Size: 512}
	ch <- minio.ObjectInfo{Key: "snapshots/run-2.json", Size: 640}
	close(ch)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "gamedata", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	svc := newTestService(mockClient)

	infos, err := svc.ListSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "snapshots/run-1.json", infos[0].Key)
	assert.Equal(t, int64(512), infos[0].Size)

	mockClient.AssertExpectations(t)
}

func TestServiceListSnapshotsMissingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "gamedata").Return(false, nil)

	svc := newTestService(mockClient)

	infos, err := svc.ListSnapshots(context.Background())
	require.NoError(t, err)
	assert.Empty(t, infos)

	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceListSnapshotsObjectError(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: errors.New("access denied")}
	close(ch)

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "gamedata", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	svc := newTestService(mockClient)

	_, err := svc.ListSnapshots(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list snapshots")
}
