// Package domains implements availability checks and registration of .cv
// domains on top of a registrar.Client.
package domains

import (
	"brandkit/pkg/cache"
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/registrar"
	"brandkit/pkg/serrors"
	"context"
	"strings"

	"go.uber.org/zap"
)

// Nameservers are delegated to every domain registered through this service.
var Nameservers = []string{"ns1.cv.domains", "ns2.cv.domains"} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	errNoDomains        = serrors.With(serrors.ErrBadRequest, "Domains array required")
	errBlankDomain      = serrors.With(serrors.ErrBadRequest, "Domain names must not be blank")
	errRegisterParams   = serrors.With(serrors.ErrBadRequest, "Domain and contact ID are required")
	errDomainIDRequired = serrors.With(serrors.ErrBadRequest, "Domain ID is required")
)

// Options configure the service. Cache is optional.
type Options struct {
	Cache cache.Availability
}

type service struct {
	client registrar.Client
	cache  cache.Availability
}

// New creates a Service backed by client.
func New(client registrar.Client, options Options) Service {
	return &service{client: client, cache: options.Cache}
}

// CheckAvailability checks every domain in one registrar call. The result
// has one entry per input, in input order, each carrying the normalized
// domain. Domains the registrar did not answer for are reported unavailable.
func (s *service) CheckAvailability(ctx context.Context, domains []string) ([]domain.Availability, error) {
	if len(domains) == 0 {
		return nil, errNoDomains
	}
	if err := s.client.Ready(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	normalized := make([]string, len(domains))
	for i, d := range domains {
		normalized[i] = Normalize(d)
		if normalized[i] == "" {
			return nil, errBlankDomain
		}
	}

	known := s.cached(ctx, normalized)

	var misses []string
	seen := make(map[string]struct{}, len(normalized))
	for _, d := range normalized {
		if _, ok := known[d]; ok {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		misses = append(misses, d)
	}

	if len(misses) > 0 {
		entries, err := s.client.CheckDomains(ctx, misses)
		if err != nil {
			return nil, registrar.WrapError(err, "Failed to check domain availability")
		}

		fresh := correlate(misses, entries)
		s.store(ctx, fresh)
		for d, a := range fresh {
			known[d] = a
		}
	}

	out := make([]domain.Availability, len(normalized))
	for i, d := range normalized {
		a, ok := known[d]
		if !ok {
			a = domain.Unavailable(d)
		}
		a.Domain = d
		out[i] = a
	}

	return out, nil
}

// correlate keys registrar entries by requested domain. Entries echoing
// their domain are matched by name; the others by position.
func correlate(requested []string, entries []domain.Availability) map[string]domain.Availability {
	want := make(map[string]struct{}, len(requested))
	for _, d := range requested {
		want[d] = struct{}{}
	}

	out := make(map[string]domain.Availability, len(entries))
	for i, e := range entries {
		key := Normalize(e.Domain)
		if key == "" && i < len(requested) {
			key = requested[i]
		}
		if _, ok := want[key]; !ok {
			continue
		}
		if _, dup := out[key]; dup {
			continue
		}
		e.Domain = key
		out[key] = e
	}

	return out
}

func (s *service) cached(ctx context.Context, domains []string) map[string]domain.Availability {
	if s.cache == nil {
		return map[string]domain.Availability{}
	}

	hits, err := s.cache.GetAvailability(ctx, domains)
	if err != nil {
		logger.Warn(ctx, "could not read availability cache", zap.Error(err))

		return map[string]domain.Availability{}
	}
	if hits == nil {
		hits = map[string]domain.Availability{}
	}
	logger.Debug(ctx, "availability cache lookup", zap.Int("requested", len(domains)), zap.Int("hits", len(hits)))

	return hits
}

func (s *service) store(ctx context.Context, fresh map[string]domain.Availability) {
	if s.cache == nil || len(fresh) == 0 {
		return
	}

	entries := make([]domain.Availability, 0, len(fresh))
	for _, a := range fresh {
		entries = append(entries, a)
	}
	if err := s.cache.SetAvailability(ctx, entries); err != nil {
		logger.Warn(ctx, "could not write availability cache", zap.Error(err))
	}
}

// CheckSingle checks one domain through the batch path.
func (s *service) CheckSingle(ctx context.Context, name string) (domain.Availability, error) {
	res, err := s.CheckAvailability(ctx, []string{name})
	if err != nil {
		return domain.Availability{}, err
	}

	return res[0], nil
}

// Register registers the domain for an existing contact with the fixed
// nameservers and auto renewal enabled.
func (s *service) Register(ctx context.Context, name, contactID string) (domain.Registration, error) {
	if err := s.client.Ready(); err != nil {
		return domain.Registration{}, err //nolint: wrapcheck
	}

	name = Normalize(name)
	contactID = strings.TrimSpace(contactID)
	if name == "" || contactID == "" {
		return domain.Registration{}, errRegisterParams
	}

	reg, err := s.client.RegisterDomain(ctx, registrar.RegisterRequest{
		Domain:      name,
		ContactID:   contactID,
		Nameservers: Nameservers,
		AutoRenew:   true,
	})
	if err != nil {
		return domain.Registration{}, registrar.WrapError(err, "Failed to register domain")
	}
	logger.Info(ctx, "domain registered", zap.String("domain", name), zap.String("registrationId", reg.ID))

	return reg, nil
}

// Get fetches a registration by registrar ID.
func (s *service) Get(ctx context.Context, domainID string) (domain.Registration, error) {
	if err := s.client.Ready(); err != nil {
		return domain.Registration{}, err //nolint: wrapcheck
	}

	domainID = strings.TrimSpace(domainID)
	if domainID == "" {
		return domain.Registration{}, errDomainIDRequired
	}

	reg, err := s.client.GetDomain(ctx, domainID)
	if err != nil {
		return domain.Registration{}, registrar.WrapError(err, "Failed to get domain")
	}

	return reg, nil
}
