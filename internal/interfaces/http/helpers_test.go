package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/dorozco/pedidos-api/internal/application/auth"
	"github.com/dorozco/pedidos-api/internal/application/dto"
	"github.com/dorozco/pedidos-api/internal/application/usecase"
	"github.com/dorozco/pedidos-api/internal/domain"
	"github.com/dorozco/pedidos-api/internal/domain/entity"
	"github.com/dorozco/pedidos-api/internal/domain/repository"
	apphttp "github.com/dorozco/pedidos-api/internal/interfaces/http"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "pedidos-api-test"
	testExpMin    = 60
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para montar la API completa sin PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeCategoryRepo struct {
	seq        int64
	categories map[int64]*entity.Category
}

func (r *fakeCategoryRepo) GetOrCreateByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	r.seq++
	now := time.Now()
	c := &entity.Category{ID: r.seq, Name: name, CreatedAt: now, UpdatedAt: now}
	r.categories[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Update(category *entity.Category) error {
	for _, c := range r.categories {
		if c.ID != category.ID && c.Name == category.Name {
			return domain.ErrCategoryNameTaken
		}
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(id int64) (bool, error) {
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

type fakeOrderRepo struct {
	seq    int64
	orders map[int64]*entity.Order
}

func (r *fakeOrderRepo) Create(order *entity.Order) error {
	r.seq++
	order.ID = r.seq
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByIDAndUser(id int64, userID string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.UserID != userID {
		return nil, nil
	}
	return o, nil
}

func (r *fakeOrderRepo) Update(order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) DeleteByIDAndUser(id int64, userID string) (bool, error) {
	o, ok := r.orders[id]
	if !ok || o.UserID != userID {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

func (r *fakeOrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type fakeTxRunner struct {
	orders     *fakeOrderRepo
	categories *fakeCategoryRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	orders repository.OrderRepository,
	categories repository.CategoryRepository,
) error) error {
	return fn(r.orders, r.categories)
}

// ──────────────────────────────────────────────────────────────────────────────
// Montaje de la app y helpers HTTP
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app        *fiber.App
	users      *fakeUserRepo
	categories *fakeCategoryRepo
	orders     *fakeOrderRepo
	authUC     *auth.AuthUseCase
}

// newTestEnv monta la API completa (router real, middlewares reales) sobre
// repositorios en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := &fakeUserRepo{users: map[string]*entity.User{}}
	categories := &fakeCategoryRepo{categories: map[int64]*entity.Category{}}
	orders := &fakeOrderRepo{orders: map[int64]*entity.Order{}}

	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: usecase.NewCategoryUseCase(categories),
		OrderUC:    usecase.NewOrderUseCase(&fakeTxRunner{orders: orders, categories: categories}, orders),
		JWTSecret:  testJWTSecret,
	})

	return &testEnv{app: app, users: users, categories: categories, orders: orders, authUC: authUC}
}

// createUser registra una cuenta y devuelve (id, "Bearer <token>").
func (e *testEnv) createUser(t *testing.T, email string) (string, string) {
	t.Helper()
	user, err := e.authUC.Register(dto.RegisterRequest{Email: email, Password: "testpass123", Name: "Test Name"})
	require.NoError(t, err)
	token, err := e.authUC.IssueToken(dto.TokenRequest{Email: email, Password: "testpass123"})
	require.NoError(t, err)
	return user.ID, "Bearer " + token.Token
}

// doJSON lanza una petición con body JSON opcional y devuelve la respuesta.
func (e *testEnv) doJSON(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode deserializa el body JSON de la respuesta en out.
func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// validOrderPayload cuerpo de creación válido con fecha límite lejana.
func validOrderPayload() map[string]any {
	return map[string]any{
		"contact_name":      "Contactor",
		"contact_phone":     "839913324234",
		"description":       "Descripciones",
		"real_state_agency": "Sigma",
		"company":           "Arasaka",
		"deadline":          "2099-01-01",
		"category":          map[string]any{"name": "Movies"},
	}
}
