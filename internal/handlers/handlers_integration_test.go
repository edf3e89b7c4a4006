package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/handlers"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/middleware"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/models"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/repositories"
	"github.com/Kamal362/Date-Maple-Catering-Service-sub002/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter int64

type testEnv struct {
	app         *fiber.App
	authService *services.AuthService
	userRepo    repositories.UserRepository
	menuRepo    repositories.MenuRepository
	couponRepo  repositories.CouponRepository
}

// setupApp builds the full route tree against a fresh in-memory SQLite
// database, mirroring the wiring in main.go minus Redis and RabbitMQ.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{}, &models.MenuItem{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderLine{}, &models.Coupon{}, &models.CouponRedemption{},
		&models.Event{}, &models.Review{}, &models.ContentBlock{}, &models.PaymentMethod{},
	)
	assert.NoError(t, err)

	userRepo := repositories.NewGORMUserRepository(db)
	menuRepo := repositories.NewGORMMenuRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	couponRepo := repositories.NewGORMCouponRepository(db)
	eventRepo := repositories.NewGORMEventRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	contentRepo := repositories.NewGORMContentRepository(db)
	paymentRepo := repositories.NewGORMPaymentMethodRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	menuService := services.NewMenuService(menuRepo, nil) // no cache in tests
	cartService := services.NewCartService(cartRepo, menuRepo)
	couponService := services.NewCouponService(couponRepo)
	orderService := services.NewOrderService(orderRepo, nil) // no MQ in tests
	checkoutService := services.NewCheckoutService(
		cartService, orderRepo, menuRepo, couponService, paymentRepo, nil, 0.08, 5.00,
	)
	eventService := services.NewEventService(eventRepo, nil)
	reviewService := services.NewReviewService(reviewRepo)
	contentService := services.NewContentService(contentRepo, paymentRepo)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	auth := middleware.AuthRequired(authService)
	staffOnly := middleware.RequireRoles(models.RoleWorker, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1, auth)
	handlers.NewMenuHandler(menuService).RegisterRoutes(apiV1, auth, adminOnly)
	handlers.NewCartHandler(cartService).RegisterRoutes(apiV1, auth)
	handlers.NewOrderHandler(orderService, checkoutService).RegisterRoutes(apiV1, auth, staffOnly, adminOnly)
	handlers.NewCouponHandler(couponService).RegisterRoutes(apiV1, auth, staffOnly, adminOnly)
	handlers.NewEventHandler(eventService).RegisterRoutes(apiV1, auth, staffOnly, adminOnly)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(apiV1, auth, adminOnly)
	handlers.NewContentHandler(contentService).RegisterRoutes(apiV1, auth, adminOnly)

	// Checkout needs an accepted payment method
	assert.NoError(t, paymentRepo.Create(&models.PaymentMethod{Name: "cash", Active: true}))

	return &testEnv{
		app:         app,
		authService: authService,
		userRepo:    userRepo,
		menuRepo:    menuRepo,
		couponRepo:  couponRepo,
	}
}

// createUser seeds an account with the given role and returns a login token.
func (e *testEnv) createUser(t *testing.T, email string, role models.Role) string {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{Name: "Test User", Email: email, Password: string(hashed), Role: role}
	assert.NoError(t, e.userRepo.Create(user))
	token, _, err := e.authService.Login(email, "password123")
	assert.NoError(t, err)
	return token
}

func (e *testEnv) seedMenuItem(t *testing.T, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{Name: name, Price: price, Category: "cafe", Available: available}
	assert.NoError(t, e.menuRepo.Create(item))
	return item
}

// request performs a JSON request against the test app and decodes the
// envelope.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var envelope map[string]interface{}
	if len(raw) > 0 {
		assert.NoError(t, json.Unmarshal(raw, &envelope))
	}
	return resp.StatusCode, envelope
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	env := setupApp(t)

	status, envelope := env.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "New Customer",
		"email":    "new@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, envelope["success"])

	status, envelope = env.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "new@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, status)
	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// Registration never grants elevated roles
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "customer", user["role"])

	// Wrong password
	status, _ = env.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "new@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	env := setupApp(t)

	status, envelope := env.request(t, http.MethodGet, "/api/v1/cart/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "not authorized, no token", envelope["message"])

	// Malformed header gets the same message
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage token
	status, envelope = env.request(t, http.MethodGet, "/api/v1/cart/", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "token failed", envelope["message"])
}

// TestRouteGatesDoNotLeak pins down that the auth and role middleware apply
// only to the routes that declare them: public routes answer without a token
// and customer-owned routes never hit a role gate.
func TestRouteGatesDoNotLeak(t *testing.T) {
	env := setupApp(t)
	env.seedMenuItem(t, "Latte", 4.00, true)

	// Public surface, no token at all
	status, _ := env.request(t, http.MethodGet, "/api/v1/menu", "", nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Walk In", "email": "walkin@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusCreated, status)
	status, _ = env.request(t, http.MethodGet, "/api/v1/reviews", "", nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.request(t, http.MethodGet, "/api/v1/payment-methods", "", nil)
	assert.Equal(t, http.StatusOK, status)

	// Customer surface: authenticated but without any staff role
	token := env.createUser(t, "cust@example.com", models.RoleCustomer)
	status, _ = env.request(t, http.MethodGet, "/api/v1/cart/", token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.request(t, http.MethodGet, "/api/v1/orders/myorders", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRoleGate(t *testing.T) {
	env := setupApp(t)
	customerToken := env.createUser(t, "cust@example.com", models.RoleCustomer)
	workerToken := env.createUser(t, "worker@example.com", models.RoleWorker)

	// Customers may not list all orders
	status, envelope := env.request(t, http.MethodGet, "/api/v1/orders", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, envelope["message"], "role not authorized")
	assert.Contains(t, envelope["message"], "customer")

	// Workers may
	status, _ = env.request(t, http.MethodGet, "/api/v1/orders", workerToken, nil)
	assert.Equal(t, http.StatusOK, status)

	// Workers still may not touch admin-only menu CRUD
	status, _ = env.request(t, http.MethodPost, "/api/v1/menu", workerToken, map[string]interface{}{
		"name": "Contraband", "price": 1.00, "category": "cafe",
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestCartMergeOverHTTP(t *testing.T) {
	env := setupApp(t)
	token := env.createUser(t, "cust@example.com", models.RoleCustomer)
	latte := env.seedMenuItem(t, "Latte", 4.00, true)

	status, _ := env.request(t, http.MethodPost, "/api/v1/cart/", token, map[string]interface{}{
		"menu_item_id": latte.ID,
	})
	assert.Equal(t, http.StatusOK, status)

	status, envelope := env.request(t, http.MethodPost, "/api/v1/cart/", token, map[string]interface{}{
		"menu_item_id": latte.ID,
	})
	assert.Equal(t, http.StatusOK, status)

	data := envelope["data"].(map[string]interface{})
	lines := data["lines"].([]interface{})
	assert.Len(t, lines, 1, "adding the same item twice must merge into one line")
	assert.Equal(t, float64(2), data["count"])
	assert.InDelta(t, 8.00, data["total"].(float64), 0.001)
}

func TestCheckoutEndToEnd(t *testing.T) {
	env := setupApp(t)
	token := env.createUser(t, "cust@example.com", models.RoleCustomer)
	latte := env.seedMenuItem(t, "Latte", 4.00, true)
	croissant := env.seedMenuItem(t, "Croissant", 3.00, true)

	status, _ := env.request(t, http.MethodPost, "/api/v1/cart/", token, map[string]interface{}{
		"menu_item_id": latte.ID, "quantity": 2,
	})
	assert.Equal(t, http.StatusOK, status)
	status, envelope := env.request(t, http.MethodPost, "/api/v1/cart/", token, map[string]interface{}{
		"menu_item_id": croissant.ID,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 11.00, envelope["data"].(map[string]interface{})["total"].(float64), 0.001)

	status, envelope = env.request(t, http.MethodPost, "/api/v1/checkout", token, map[string]interface{}{
		"order_type":     "pickup",
		"payment_method": "cash",
	})
	assert.Equal(t, http.StatusCreated, status)
	order := envelope["data"].(map[string]interface{})
	assert.InDelta(t, 0.88, order["tax"].(float64), 0.001)
	assert.InDelta(t, 11.88, order["total_amount"].(float64), 0.001)
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "pending", order["payment_status"])

	// Cart is empty afterwards
	status, envelope = env.request(t, http.MethodGet, "/api/v1/cart/", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), envelope["data"].(map[string]interface{})["count"])

	// The order shows up under myorders
	status, envelope = env.request(t, http.MethodGet, "/api/v1/orders/myorders", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, envelope["data"].([]interface{}), 1)
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	env := setupApp(t)
	token := env.createUser(t, "cust@example.com", models.RoleCustomer)

	status, envelope := env.request(t, http.MethodPost, "/api/v1/checkout", token, map[string]interface{}{
		"order_type":     "pickup",
		"payment_method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, envelope["success"])
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	env := setupApp(t)
	customerToken := env.createUser(t, "cust@example.com", models.RoleCustomer)
	workerToken := env.createUser(t, "worker@example.com", models.RoleWorker)
	latte := env.seedMenuItem(t, "Latte", 4.00, true)

	status, _ := env.request(t, http.MethodPost, "/api/v1/cart/", customerToken, map[string]interface{}{
		"menu_item_id": latte.ID,
	})
	assert.Equal(t, http.StatusOK, status)
	status, envelope := env.request(t, http.MethodPost, "/api/v1/checkout", customerToken, map[string]interface{}{
		"order_type": "pickup", "payment_method": "cash",
	})
	assert.Equal(t, http.StatusCreated, status)
	orderID := envelope["data"].(map[string]interface{})["id"].(string)

	// Customers may not advance the status
	status, _ = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/status", customerToken, map[string]string{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusForbidden, status)

	// Worker confirms
	status, envelope = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/status", workerToken, map[string]string{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "confirmed", envelope["data"].(map[string]interface{})["status"])

	// Cancelling a confirmed order is a state conflict and changes nothing
	status, _ = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/cancel", customerToken, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, envelope = env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, customerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "confirmed", envelope["data"].(map[string]interface{})["status"])

	// Payment can be settled independently of delivery status
	status, envelope = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/payment", workerToken, map[string]string{
		"payment_status": "paid",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "paid", envelope["data"].(map[string]interface{})["payment_status"])
}

func TestCancelPendingOrder(t *testing.T) {
	env := setupApp(t)
	token := env.createUser(t, "cust@example.com", models.RoleCustomer)
	latte := env.seedMenuItem(t, "Latte", 4.00, true)

	status, _ := env.request(t, http.MethodPost, "/api/v1/cart/", token, map[string]interface{}{
		"menu_item_id": latte.ID,
	})
	assert.Equal(t, http.StatusOK, status)
	status, envelope := env.request(t, http.MethodPost, "/api/v1/checkout", token, map[string]interface{}{
		"order_type": "pickup", "payment_method": "cash",
	})
	assert.Equal(t, http.StatusCreated, status)
	orderID := envelope["data"].(map[string]interface{})["id"].(string)

	status, envelope = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/cancel", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cancelled", envelope["data"].(map[string]interface{})["status"])
}

func TestCouponValidateOverHTTP(t *testing.T) {
	env := setupApp(t)
	token := env.createUser(t, "cust@example.com", models.RoleCustomer)

	assert.NoError(t, env.couponRepo.Create(&models.Coupon{
		Code: "WELCOME10", DiscountType: models.DiscountPercentage, DiscountValue: 10,
		ActiveFrom: time.Now().Add(-time.Hour), ActiveUntil: time.Now().Add(time.Hour),
		UsageLimit: 100, Active: true,
	}))

	status, envelope := env.request(t, http.MethodPost, "/api/v1/coupons/validate", token, map[string]interface{}{
		"code": "WELCOME10", "subtotal": 20.00,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 2.00, envelope["data"].(map[string]interface{})["discount"].(float64), 0.001)

	status, _ = env.request(t, http.MethodPost, "/api/v1/coupons/validate", token, map[string]interface{}{
		"code": "NOPE", "subtotal": 20.00,
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCouponDeleteFreesCode(t *testing.T) {
	env := setupApp(t)

	first := &models.Coupon{
		Code: "SPRING", DiscountType: models.DiscountFixed, DiscountValue: 5,
		ActiveFrom: time.Now().Add(-time.Hour), ActiveUntil: time.Now().Add(time.Hour),
		UsageLimit: 10, Active: true,
	}
	assert.NoError(t, env.couponRepo.Create(first))
	assert.NoError(t, env.couponRepo.Delete(first.ID))

	// The delete is a hard delete, so the unique code can be reissued.
	assert.NoError(t, env.couponRepo.Create(&models.Coupon{
		Code: "SPRING", DiscountType: models.DiscountPercentage, DiscountValue: 15,
		ActiveFrom: time.Now().Add(-time.Hour), ActiveUntil: time.Now().Add(time.Hour),
		UsageLimit: 10, Active: true,
	}))

	reissued, err := env.couponRepo.GetByCode("SPRING")
	assert.NoError(t, err)
	assert.Equal(t, models.DiscountPercentage, reissued.DiscountType)
}

func TestEventInquiryFlow(t *testing.T) {
	env := setupApp(t)
	workerToken := env.createUser(t, "worker@example.com", models.RoleWorker)

	// Public submission, no token required
	status, envelope := env.request(t, http.MethodPost, "/api/v1/events", "", map[string]interface{}{
		"name":        "Maple Wedding",
		"email":       "couple@example.com",
		"phone":       "5551234567",
		"event_date":  time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		"guest_count": 120,
	})
	assert.Equal(t, http.StatusCreated, status)
	eventID := envelope["data"].(map[string]interface{})["id"].(string)
	assert.Equal(t, "pending", envelope["data"].(map[string]interface{})["status"])

	// Staff moves it along
	status, envelope = env.request(t, http.MethodPut, "/api/v1/events/"+eventID+"/status", workerToken, map[string]string{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "confirmed", envelope["data"].(map[string]interface{})["status"])

	// Unknown status is rejected
	status, _ = env.request(t, http.MethodPut, "/api/v1/events/"+eventID+"/status", workerToken, map[string]string{
		"status": "ghosted",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestMenuAdminCRUD(t *testing.T) {
	env := setupApp(t)
	adminToken := env.createUser(t, "admin@example.com", models.RoleAdmin)

	status, envelope := env.request(t, http.MethodPost, "/api/v1/menu", adminToken, map[string]interface{}{
		"name": "Maple Latte", "price": 5.50, "category": "drinks", "available": true,
	})
	assert.Equal(t, http.StatusCreated, status)
	itemID := envelope["data"].(map[string]interface{})["id"].(string)

	// Public menu shows it without a token
	status, envelope = env.request(t, http.MethodGet, "/api/v1/menu", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, envelope["data"].([]interface{}), 1)

	// Marking it unavailable hides it from the default listing
	status, _ = env.request(t, http.MethodPut, "/api/v1/menu/"+itemID, adminToken, map[string]interface{}{
		"name": "Maple Latte", "price": 5.50, "category": "drinks", "available": false,
	})
	assert.Equal(t, http.StatusOK, status)

	status, envelope = env.request(t, http.MethodGet, "/api/v1/menu", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, envelope["data"].([]interface{}), 0)
}
