package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"receipt-desk/internal/models"
	"receipt-desk/internal/repository"

	"github.com/google/uuid"
)

type fakeCompanies struct {
	companies []*models.Company
	err       error
}

func (f *fakeCompanies) List(ctx context.Context) ([]*models.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.companies, nil
}

func (f *fakeCompanies) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeTransactions struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]models.Transaction
	createErr error
	names     map[uuid.UUID]string
}

func newFakeTransactions() *fakeTransactions {
	return &fakeTransactions{rows: make(map[uuid.UUID]models.Transaction), names: make(map[uuid.UUID]string)}
}

func (f *fakeTransactions) Create(ctx context.Context, tx *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[tx.ID] = *tx
	return nil
}

func (f *fakeTransactions) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	tx.CompanyName = f.names[tx.CompanyID]
	return &tx, nil
}

func (f *fakeTransactions) List(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.Transaction
	for _, tx := range f.rows {
		if filter.UserID != nil && tx.UserID != *filter.UserID {
			continue
		}
		if filter.CompanyID != nil && tx.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.DateExpected != nil && !tx.DateExpected.Equal(*filter.DateExpected) {
			continue
		}
		if filter.Status != nil && tx.Status != *filter.Status {
			continue
		}
		tx := tx
		tx.CompanyName = f.names[tx.CompanyID]
		out = append(out, &tx)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].DateExpected.Equal(out[j].DateExpected) {
			return out[i].DateExpected.After(out[j].DateExpected)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeTransactions) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status models.TransactionStatus) (bool, error) {
	return f.updateIfPending(id, func(tx *models.Transaction) { tx.Status = status })
}

func (f *fakeTransactions) UpdateProfitPercentageIfPending(ctx context.Context, id uuid.UUID, value float64) (bool, error) {
	return f.updateIfPending(id, func(tx *models.Transaction) { tx.ProfitPercentage = value })
}

func (f *fakeTransactions) DeleteIfPending(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.rows[id]
	if !ok || tx.Status != models.StatusPending {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeTransactions) updateIfPending(id uuid.UUID, apply func(*models.Transaction)) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.rows[id]
	if !ok || tx.Status != models.StatusPending {
		return false, nil
	}
	apply(&tx)
	tx.UpdatedAt = time.Now()
	f.rows[id] = tx
	return true, nil
}

func (f *fakeTransactions) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeTracking struct {
	mu        sync.Mutex
	rows      map[string]models.DailyTracking
	txs       *fakeTransactions
	upsertErr error
}

func newFakeTracking(txs *fakeTransactions) *fakeTracking {
	return &fakeTracking{rows: make(map[string]models.DailyTracking), txs: txs}
}

func trackingKey(companyID uuid.UUID, day time.Time) string {
	return companyID.String() + "/" + day.Format("2006-01-02")
}

func (f *fakeTracking) Upsert(ctx context.Context, dt *models.DailyTracking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.rows[trackingKey(dt.CompanyID, dt.TrackingDate)] = *dt
	return nil
}

func (f *fakeTracking) ListUploadedOn(ctx context.Context, day time.Time) ([]*models.TrackedUpload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.TrackedUpload
	for _, dt := range f.rows {
		if !dt.HasUploaded || dt.TrackingDate.Format("2006-01-02") != day.Format("2006-01-02") {
			continue
		}
		u := &models.TrackedUpload{DailyTracking: dt}
		if tx, err := f.txs.GetByID(ctx, dt.TransactionID); err == nil {
			u.Linked = models.OneOf(tx.Amount)
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeTracking) get(companyID uuid.UUID, day time.Time) (models.DailyTracking, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dt, ok := f.rows[trackingKey(companyID, day)]
	return dt, ok
}

func (f *fakeTracking) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeBlobs struct {
	keys []string
	err  error
}

func (f *fakeBlobs) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://blobs.test/" + key, nil
}

type fakeSettings struct {
	values map[string]string
	err    error
	reads  int
}

func (f *fakeSettings) Get(ctx context.Context, key string) (*models.GlobalSetting, error) {
	f.reads++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.GlobalSetting{Key: key, Value: v}, nil
}

func (f *fakeSettings) Upsert(ctx context.Context, s *models.GlobalSetting) error {
	if f.err != nil {
		return f.err
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[s.Key] = s.Value
	return nil
}

type fakeCache struct {
	values map[string]string
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

type fakeCredentials struct {
	rows []*models.Credential
}

func (f *fakeCredentials) List(ctx context.Context, service string) ([]*models.Credential, error) {
	var out []*models.Credential
	for _, c := range f.rows {
		if service == "" || strings.Contains(strings.ToLower(c.ServiceName), strings.ToLower(service)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCredentials) Create(ctx context.Context, c *models.Credential) error {
	f.rows = append(f.rows, c)
	return nil
}

func (f *fakeCredentials) Delete(ctx context.Context, id uuid.UUID) error {
	for i, c := range f.rows {
		if c.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUsers struct {
	byID map[uuid.UUID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type fakeExtractor struct {
	answer   string
	err      error
	mimeType string
	image    []byte
	text     string
	prompt   string
}

func (f *fakeExtractor) ExtractFromImage(ctx context.Context, image []byte, fileName, mimeType, prompt string) (string, error) {
	f.image, f.mimeType, f.prompt = image, mimeType, prompt
	return f.answer, f.err
}

func (f *fakeExtractor) ExtractFromText(ctx context.Context, text, prompt string) (string, error) {
	f.text, f.prompt = text, prompt
	return f.answer, f.err
}

type fixedFee float64

func (f fixedFee) PlatformFee(ctx context.Context) float64 {
	return float64(f)
}

// tickingClock advances one second per call.
func tickingClock(start time.Time) Clock {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

var (
	adminActor   = Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	partnerActor = Actor{UserID: uuid.New(), Role: models.RolePartner}
)
