package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"greeter/internal/model"
	"greeter/internal/repository"
	"greeter/internal/storage"
	"greeter/internal/upstream"
)

var (
	// ErrNotFound is returned when a requested record or archive does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable is returned by store operations when no database is configured.
	ErrStoreUnavailable = errors.New("disaster store is not configured")
	// ErrArchiveUnavailable is returned by archive reads when no object storage is configured.
	ErrArchiveUnavailable = errors.New("archive storage is not configured")
)

const (
	declarationWindowMonths = 6
	archivePrefix           = "nasa/eonet/"
	archiveTimeLayout       = "20060102T150405Z"
	eventTimeLayout         = "2006-01-02T15:04:05.000Z07:00"
)

var archiveNamePattern = regexp.MustCompile(`^\d{8}T\d{6}Z\.json$`)

// RecentDisasters is the enriched NASA feed. ArchiveName is set when the raw
// feed was archived.
type RecentDisasters struct {
	Items       []model.RecentDisaster
	ArchiveName string
}

// DisasterService defines the use cases behind the disaster routes.
type DisasterService interface {
	// ActiveDeclarations returns open FEMA declarations for the county at a
	// point, declared within the last six months.
	ActiveDeclarations(ctx context.Context, at model.Coordinates) (*model.DeclarationList, error)

	// Recent returns the newest natural events, each with its reverse-geocoded location.
	Recent(ctx context.Context) (*RecentDisasters, error)

	// Archive streams a previously archived raw feed by name.
	Archive(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)

	// Store normalizes and saves a batch of records, returning how many were saved.
	Store(ctx context.Context, disasters []model.Disaster) (int, error)

	// Latest returns the most recently stored record.
	Latest(ctx context.Context) (*model.Disaster, error)
}

// DisasterDeps wires a DisasterService. Repo and Objects are optional.
type DisasterDeps struct {
	Census          upstream.CensusLocator
	Declarations    upstream.DeclarationSource
	Events          upstream.EventSource
	Geocoder        upstream.ReverseGeocoder
	Repo            repository.DisasterRepository
	Objects         storage.Storage
	Logger          logrus.FieldLogger
	RecentLimit     int
	GeocodeInterval time.Duration
}

type disasterService struct {
	DisasterDeps
	tracer trace.Tracer
	now    func() time.Time
}

// NewDisasterService constructs a DisasterService using the global tracer provider.
func NewDisasterService(d DisasterDeps) DisasterService {
	if d.RecentLimit <= 0 {
		d.RecentLimit = 10
	}
	if d.Logger == nil {
		d.Logger = logrus.StandardLogger()
	}
	return &disasterService{
		DisasterDeps: d,
		tracer:       otel.Tracer(tracerName),
		now:          time.Now,
	}
}

func (s *disasterService) ActiveDeclarations(ctx context.Context, at model.Coordinates) (*model.DeclarationList, error) {
	ctx, sp := s.tracer.Start(ctx, "disaster.active_declarations")
	defer sp.End()

	county, err := s.Census.LocateCounty(ctx, at)
	if err != nil {
		return nil, err
	}
	sp.SetAttributes(attribute.String("fips.county", county.County))

	all, err := s.Declarations.OpenDeclarations(ctx, county)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, -declarationWindowMonths, 0)
	recent := make([]model.DisasterDeclaration, 0, len(all))
	for _, d := range all {
		if !d.DeclarationDate.Before(since) {
			recent = append(recent, d)
		}
	}
	sp.SetAttributes(attribute.Int("declarations.count", len(recent)))
	return &model.DeclarationList{Declarations: recent}, nil
}

func (s *disasterService) Recent(ctx context.Context) (*RecentDisasters, error) {
	ctx, sp := s.tracer.Start(ctx, "disaster.recent")
	defer sp.End()

	events, raw, err := s.Events.NaturalEvents(ctx)
	if err != nil {
		return nil, err
	}

	out := &RecentDisasters{ArchiveName: s.archiveFeed(ctx, raw)}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	if len(events) > s.RecentLimit {
		events = events[:s.RecentLimit]
	}

	out.Items = make([]model.RecentDisaster, 0, len(events))
	for i, e := range events {
		if i > 0 && s.GeocodeInterval > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.GeocodeInterval):
			}
		}

		at := model.Coordinates{Latitude: e.Latitude, Longitude: e.Longitude}
		loc, err := s.Geocoder.ReverseGeocode(ctx, at)
		if err != nil {
			s.Logger.WithError(err).WithField("event", e.Title).Warn("reverse_geocode_failed")
			loc = model.Location{}
		}

		out.Items = append(out.Items, model.RecentDisaster{
			Name:      e.Title,
			Type:      strings.Join(e.Categories, ", "),
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
			DateTime:  e.Date.UTC().Format(eventTimeLayout),
			Location:  loc,
		})
	}
	sp.SetAttributes(attribute.Int("disasters.count", len(out.Items)))
	return out, nil
}

// archiveFeed stores the raw feed and returns its name. Failures are logged and
// yield an empty name; the feed is still served.
func (s *disasterService) archiveFeed(ctx context.Context, raw []byte) string {
	if s.Objects == nil || len(raw) == 0 {
		return ""
	}
	name := s.now().UTC().Format(archiveTimeLayout) + ".json"
	_, err := s.Objects.Put(ctx, archivePrefix+name, bytes.NewReader(raw), storage.PutObjectOptions{
		Size:        int64(len(raw)),
		ContentType: "application/json",
		Metadata:    map[string]string{"source": "eonet"},
	})
	if err != nil {
		s.Logger.WithError(err).WithField("key", archivePrefix+name).Warn("feed_archive_failed")
		return ""
	}
	return name
}

func (s *disasterService) Archive(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if s.Objects == nil {
		return nil, storage.ObjectInfo{}, ErrArchiveUnavailable
	}
	if !archiveNamePattern.MatchString(name) {
		return nil, storage.ObjectInfo{}, ErrNotFound
	}
	rc, info, err := s.Objects.Get(ctx, archivePrefix+name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("get archive: %w", err)
	}
	return rc, info, nil
}

func (s *disasterService) Store(ctx context.Context, disasters []model.Disaster) (int, error) {
	if s.Repo == nil {
		return 0, ErrStoreUnavailable
	}
	ctx, sp := s.tracer.Start(ctx, "disaster.store")
	defer sp.End()
	sp.SetAttributes(attribute.Int("disasters.count", len(disasters)))

	if len(disasters) == 0 {
		return 0, nil
	}

	batch := make([]model.Disaster, len(disasters))
	for i, d := range disasters {
		d.Normalize()
		batch[i] = d
	}
	if err := s.Repo.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("store disasters: %w", err)
	}
	return len(batch), nil
}

func (s *disasterService) Latest(ctx context.Context) (*model.Disaster, error) {
	if s.Repo == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, sp := s.tracer.Start(ctx, "disaster.latest")
	defer sp.End()

	d, err := s.Repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("latest disaster: %w", err)
	}
	return d, nil
}
