package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tienda/config"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/infra/auth"
	"tienda/internal/infra/sanitize"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// memDB is an in-memory stand-in for the database, shared by the fake
// repositories. Slices keep insertion order; listings return newest first.
type memDB struct {
	users    []entity.User
	products []entity.Product
	coupons  []entity.Coupon
	orders   []entity.Order
	comments []entity.Comment
	logs     []entity.SecurityLog
}

func (db *memDB) clone() *memDB {
	copied := &memDB{
		users:    append([]entity.User(nil), db.users...),
		products: append([]entity.Product(nil), db.products...),
		coupons:  append([]entity.Coupon(nil), db.coupons...),
		comments: append([]entity.Comment(nil), db.comments...),
		logs:     append([]entity.SecurityLog(nil), db.logs...),
	}
	copied.orders = make([]entity.Order, len(db.orders))
	for i, order := range db.orders {
		copied.orders[i] = order
		items := make([]*entity.OrderItem, len(order.Items))
		for j, item := range order.Items {
			itemCopy := *item
			items[j] = &itemCopy
		}
		copied.orders[i].Items = items
	}

	return copied
}

// memTxManager runs the transaction function against the live store and
// restores a snapshot when the function fails, mirroring a rollback.
type memTxManager struct {
	mu sync.Mutex
	db *memDB
}

func newMemTxManager() *memTxManager {
	return &memTxManager{db: &memDB{}}
}

func (m *memTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.db.clone()
	if err := fn(&memFactory{db: m.db}); err != nil {
		*m.db = *snapshot

		return err
	}

	return nil
}

type memFactory struct {
	db *memDB
}

func (f *memFactory) NewUserRepository() repository.UserRepository {
	return &memUserRepo{db: f.db}
}

func (f *memFactory) NewProductRepository() repository.ProductRepository {
	return &memProductRepo{db: f.db}
}

func (f *memFactory) NewOrderRepository() repository.OrderRepository {
	return &memOrderRepo{db: f.db}
}

func (f *memFactory) NewCouponRepository() repository.CouponRepository {
	return &memCouponRepo{db: f.db}
}

func (f *memFactory) NewCommentRepository() repository.CommentRepository {
	return &memCommentRepo{db: f.db}
}

func (f *memFactory) NewSecurityLogRepository() repository.SecurityLogRepository {
	return &memSecurityLogRepo{db: f.db}
}

type memUserRepo struct {
	db *memDB
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for i := range r.db.users {
		if r.db.users[i].ID == id {
			user := r.db.users[i]

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for i := range r.db.users {
		if r.db.users[i].Email == email {
			user := r.db.users[i]

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.db.users))
	for i := len(r.db.users) - 1; i >= 0; i-- {
		user := r.db.users[i]
		users = append(users, &user)
	}

	return users, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	for i := range r.db.users {
		if r.db.users[i].Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.db.users = append(r.db.users, *user)

	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i := range r.db.users {
		if r.db.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			r.db.users[i] = *user

			return nil
		}
	}

	return repository.ErrUserNotFound
}

type memProductRepo struct {
	db *memDB
}

func (r *memProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range r.db.products {
		if r.db.products[i].ID == id {
			product := r.db.products[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(r.db.products))
	for i := len(r.db.products) - 1; i >= 0; i-- {
		product := r.db.products[i]
		products = append(products, &product)
	}

	return products, nil
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.db.products = append(r.db.products, *product)

	return nil
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	for i := range r.db.products {
		if r.db.products[i].ID == product.ID {
			r.db.products[i] = *product

			return nil
		}
	}

	return repository.ErrProductNotFound
}

func (r *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.db.products {
		if r.db.products[i].ID == id {
			r.db.products = append(r.db.products[:i], r.db.products[i+1:]...)

			return nil
		}
	}

	return repository.ErrProductNotFound
}

type memOrderRepo struct {
	db *memDB
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
	}

	stored := *order
	items := make([]*entity.OrderItem, len(order.Items))
	for i, item := range order.Items {
		itemCopy := *item
		items[i] = &itemCopy
	}
	stored.Items = items
	r.db.orders = append(r.db.orders, stored)

	return nil
}

func (r *memOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for i := range r.db.orders {
		if r.db.orders[i].ID == id {
			order := r.db.orders[i]

			return &order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *memOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(r.db.orders))
	for i := len(r.db.orders) - 1; i >= 0; i-- {
		if r.db.orders[i].UserID == userID {
			order := r.db.orders[i]
			orders = append(orders, &order)
		}
	}

	return orders, nil
}

type memCouponRepo struct {
	db *memDB
}

func (r *memCouponRepo) Create(ctx context.Context, coupon *entity.Coupon) error {
	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	coupon.CreatedAt = time.Now()
	r.db.coupons = append(r.db.coupons, *coupon)

	return nil
}

func (r *memCouponRepo) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	for i := range r.db.coupons {
		if r.db.coupons[i].Code == code {
			coupon := r.db.coupons[i]

			return &coupon, nil
		}
	}

	return nil, repository.ErrCouponNotFound
}

func (r *memCouponRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Coupon, error) {
	coupons := make([]*entity.Coupon, 0, len(r.db.coupons))
	for i := len(r.db.coupons) - 1; i >= 0; i-- {
		if r.db.coupons[i].UserID == userID {
			coupon := r.db.coupons[i]
			coupons = append(coupons, &coupon)
		}
	}

	return coupons, nil
}

func (r *memCouponRepo) Consume(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	for i := range r.db.coupons {
		if r.db.coupons[i].ID == id {
			if r.db.coupons[i].Used {
				return repository.ErrCouponAlreadyUsed
			}
			r.db.coupons[i].Used = true
			usedAtCopy := usedAt
			r.db.coupons[i].UsedAt = &usedAtCopy

			return nil
		}
	}

	return repository.ErrCouponAlreadyUsed
}

type memCommentRepo struct {
	db *memDB
}

func (r *memCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	comment.CreatedAt = time.Now()
	r.db.comments = append(r.db.comments, *comment)

	return nil
}

func (r *memCommentRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error) {
	comments := make([]*entity.Comment, 0, len(r.db.comments))
	for i := len(r.db.comments) - 1; i >= 0; i-- {
		if r.db.comments[i].ProductID != productID {
			continue
		}
		comment := r.db.comments[i]
		// The SQL implementation joins author fields in.
		for j := range r.db.users {
			if r.db.users[j].ID == comment.UserID {
				comment.AuthorName = r.db.users[j].FullName
				comment.AuthorPhotoURL = r.db.users[j].PhotoURL

				break
			}
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

type memSecurityLogRepo struct {
	db *memDB
}

func (r *memSecurityLogRepo) Create(ctx context.Context, log *entity.SecurityLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()
	r.db.logs = append(r.db.logs, *log)

	return nil
}

func (r *memSecurityLogRepo) List(ctx context.Context, limit int) ([]*entity.SecurityLog, error) {
	logs := make([]*entity.SecurityLog, 0, limit)
	for i := len(r.db.logs) - 1; i >= 0 && len(logs) < limit; i-- {
		log := r.db.logs[i]
		logs = append(logs, &log)
	}

	return logs, nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []*service.OrderCreatedEvent
}

func (p *recordingPublisher) PublishOrderCreated(ctx context.Context, event *service.OrderCreatedEvent) error {
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

// newTestConfig mirrors the shipped config.yaml with the cheapest bcrypt
// cost so the suite stays fast.
func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "test-token-signing-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:        bcrypt.MinCost,
		TokenTTL:          time.Hour,
		MaxFailedLogins:   5,
		LockoutWindow:     15 * time.Minute,
		WelcomeDiscount:   15,
		WelcomeCouponDays: 30,
	}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   false,
		MaxLength:        72,
	}
	cfg.Catalog = &config.CatalogConfig{
		ImageURLPattern: `^https://images\.pexels\.com/photos/\d+/pexels-photo-\d+\.jpeg`,
	}
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}

	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serviceFixtures bundles the real domain services and fake persistence
// used by every usecase test in this package.
type serviceFixtures struct {
	txManager *memTxManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	sanitizer service.Sanitizer
	publisher *recordingPublisher
	cfg       *config.Config
}

func newServiceFixtures(t *testing.T) *serviceFixtures {
	t.Helper()

	cfg := newTestConfig()
	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		t.Fatalf("failed to build token service: %v", err)
	}

	return &serviceFixtures{
		txManager: newMemTxManager(),
		hasher:    auth.NewBcryptHasher(cfg),
		tokens:    tokens,
		sanitizer: sanitize.NewHTMLSanitizer(),
		publisher: &recordingPublisher{},
		cfg:       cfg,
	}
}

// seedUser inserts an account directly into the fake store.
func (f *serviceFixtures) seedUser(email, password string, role entity.Role, status entity.UserStatus) *entity.User {
	hash, _ := f.hasher.Hash(password)
	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Seeded User",
		Role:         role,
		Status:       status,
	}
	_ = f.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(context.Background(), user)
	})

	return user
}

// seedProductRow inserts a product directly into the fake store.
func (f *serviceFixtures) seedProductRow(name string, price int64) *entity.Product {
	product := &entity.Product{
		Name:        name,
		Description: "seeded description",
		Price:       price,
		ImageURL:    "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg",
		Stock:       10,
	}
	_ = f.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProductRepository().Create(context.Background(), product)
	})

	return product
}

// seedCoupon inserts a coupon directly into the fake store.
func (f *serviceFixtures) seedCoupon(userID uuid.UUID, code string, pct int, expiresAt time.Time, used bool) *entity.Coupon {
	coupon := &entity.Coupon{
		Code:               code,
		DiscountPercentage: pct,
		UserID:             userID,
		ExpiresAt:          expiresAt,
		Used:               used,
	}
	_ = f.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCouponRepository().Create(context.Background(), coupon)
	})

	return coupon
}

// findUserByID reads a user row straight from the fake store.
func findUserByID(t *testing.T, f *serviceFixtures, id uuid.UUID) *entity.User {
	t.Helper()

	var user *entity.User
	err := f.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(context.Background(), id)
		user = found

		return err
	})
	if err != nil {
		t.Fatalf("failed to find user %s: %v", id, err)
	}

	return user
}

// updateUser mutates a stored user row in place.
func updateUser(t *testing.T, f *serviceFixtures, id uuid.UUID, mutate func(*entity.User)) {
	t.Helper()

	err := f.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		user, err := userRepo.FindByID(context.Background(), id)
		if err != nil {
			return err
		}
		mutate(user)

		return userRepo.Update(context.Background(), user)
	})
	if err != nil {
		t.Fatalf("failed to update user %s: %v", id, err)
	}
}

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()

	return uuid.New()
}

func (f *serviceFixtures) securityLogs(limit int) []*entity.SecurityLog {
	var logs []*entity.SecurityLog
	_ = f.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewSecurityLogRepository().List(context.Background(), limit)
		logs = found

		return err
	})

	return logs
}
