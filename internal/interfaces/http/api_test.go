package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rh-admin-api/internal/application/auth"
	"github.com/jhoicas/rh-admin-api/internal/application/usecase"
	"github.com/jhoicas/rh-admin-api/internal/domain"
	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
	apphttp "github.com/jhoicas/rh-admin-api/internal/interfaces/http"
	"github.com/jhoicas/rh-admin-api/pkg/hash"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria + app de prueba
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) (int64, error) {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return 0, domain.ErrEmailAlreadyExists
		}
	}
	m.seq++
	cp := *u
	cp.ID = m.seq
	m.users[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	list := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (m *memUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	m.users[cp.ID] = &cp
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id int64) error {
	delete(m.users, id)
	return nil
}

type memEmployeeRepo struct {
	seq       int64
	employees map[int64]*entity.Employee
	userRepo  *memUserRepo
}

func (m *memEmployeeRepo) withEmail(e *entity.Employee) *entity.Employee {
	cp := *e
	if owner, ok := m.userRepo.users[cp.UserID]; ok {
		cp.UserEmail = owner.Email
	}
	return &cp
}

func (m *memEmployeeRepo) Create(_ context.Context, e *entity.Employee) (int64, error) {
	m.seq++
	cp := *e
	cp.ID = m.seq
	m.employees[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, nil
	}
	return m.withEmail(e), nil
}

func (m *memEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	list := make([]*entity.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		list = append(list, m.withEmail(e))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	cp := *e
	m.employees[cp.ID] = &cp
	return nil
}

func (m *memEmployeeRepo) CountByUser(_ context.Context, userID int64) (int, error) {
	n := 0
	for _, e := range m.employees {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

type stubRosterGenerator struct{}

func (stubRosterGenerator) GenerateRosterPDF(_ context.Context, _ []*entity.Employee) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// buildTestApp arma la app Fiber completa (handlers + use cases reales) sobre
// repositorios en memoria y el esquema de hash legacy.
func buildTestApp(t *testing.T) (*fiber.App, *memEmployeeRepo) {
	t.Helper()
	userRepo := &memUserRepo{users: make(map[int64]*entity.User)}
	employeeRepo := &memEmployeeRepo{employees: make(map[int64]*entity.Employee), userRepo: userRepo}
	hasher := hash.LegacyMD5{}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(userRepo, hasher),
		UserUC:     usecase.NewUserUseCase(userRepo, employeeRepo, hasher),
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo, userRepo),
		ReportUC:   usecase.NewReportUseCase(employeeRepo, stubRosterGenerator{}),
	})
	return app, employeeRepo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(b)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var l []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&l))
	return l
}

func createUser(t *testing.T, app *fiber.App, email string) int64 {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/users", map[string]string{
		"name": "Ana", "last_name": "Ruiz", "email": email, "password": "secret", "agency": "North",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeMap(t, resp)
	return int64(body["userId"].(float64))
}

func employeeBody(userID int64) map[string]interface{} {
	return map[string]interface{}{
		"name": "Luis", "last_name": "Pérez", "agency": "North",
		"date_of_birth": "1990-05-14", "high_date": "2020-01-15",
		"status": "activo", "id_user": userID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	app, _ := buildTestApp(t)
	createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "ana@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeMap(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["token"], 128, "token hex de longitud fija")

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ana@x.com", user["email"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "el digest nunca viaja en la respuesta")
}

// Email desconocido y contraseña incorrecta: mismo status y mismo cuerpo,
// para no permitir enumerar usuarios.
func TestLogin_RespuestaIdenticaParaEmailYPassword(t *testing.T) {
	app, _ := buildTestApp(t)
	createUser(t, app, "ana@x.com")

	respUnknown := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "nadie@x.com", "password": "secret",
	})
	respWrongPw := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "ana@x.com", "password": "mal",
	})

	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrongPw.StatusCode)
	assert.Equal(t, decodeMap(t, respUnknown), decodeMap(t, respWrongPw))
}

func TestLogin_CamposFaltantes(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{"email": "ana@x.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de la especificación funcional: crear y leer inmediatamente.
func TestUserCreate_LuegoGet(t *testing.T) {
	app, _ := buildTestApp(t)

	id := createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Ana", body["name"])
	assert.Equal(t, "Ruiz", body["last_name"])
	assert.Equal(t, "ana@x.com", body["email"])
	assert.Equal(t, "North", body["agency"])
	_, hasPassword := body["password"]
	assert.False(t, hasPassword)
}

func TestUserCreate_EmailDuplicado409(t *testing.T) {
	app, _ := buildTestApp(t)
	createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/users", map[string]string{
		"name": "Otra", "last_name": "Ana", "email": "ana@x.com", "password": "x", "agency": "South",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])
}

func TestUserCreate_CamposFaltantes400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/users", map[string]string{
		"name": "Ana", "email": "ana@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUserGet_NoExiste404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/users/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUserList_SinDigest(t *testing.T) {
	app, _ := buildTestApp(t)
	createUser(t, app, "ana@x.com")
	createUser(t, app, "ben@x.com")

	resp := doJSON(t, app, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 2)
	// más recientes primero
	assert.Equal(t, "ben@x.com", list[0]["email"])
	for _, u := range list {
		_, hasPassword := u["password"]
		assert.False(t, hasPassword)
	}
}

// Actualizar sin password debe conservar el digest: el login con la
// contraseña original sigue funcionando.
func TestUserUpdate_SinPasswordConservaCredenciales(t *testing.T) {
	app, _ := buildTestApp(t)
	id := createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d", id), map[string]string{
		"name": "Ana María", "last_name": "Ruiz", "email": "ana@x.com", "agency": "South",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	login := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "ana@x.com", "password": "secret",
	})
	assert.Equal(t, http.StatusOK, login.StatusCode, "el digest no debe haberse tocado")
	login.Body.Close()
}

func TestUserUpdate_ConPasswordCambiaCredenciales(t *testing.T) {
	app, _ := buildTestApp(t)
	id := createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/users/%d", id), map[string]string{
		"name": "Ana", "last_name": "Ruiz", "email": "ana@x.com", "password": "nueva", "agency": "North",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	old := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "ana@x.com", "password": "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, old.StatusCode)
	old.Body.Close()

	fresh := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "ana@x.com", "password": "nueva",
	})
	assert.Equal(t, http.StatusOK, fresh.StatusCode)
	fresh.Body.Close()
}

func TestUserDelete_BloqueadoConEmpleados(t *testing.T) {
	app, _ := buildTestApp(t)
	id := createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", employeeBody(id))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	del := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil)
	assert.Equal(t, http.StatusBadRequest, del.StatusCode)
	body := decodeMap(t, del)
	assert.Equal(t, "HAS_EMPLOYEES", body["code"])
}

func TestUserDelete_SinEmpleados(t *testing.T) {
	app, _ := buildTestApp(t)
	id := createUser(t, app, "ana@x.com")

	del := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil)
	require.Equal(t, http.StatusOK, del.StatusCode)
	del.Body.Close()

	get := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, get.StatusCode, "el usuario borrado queda inalcanzable")
	get.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Employees
// ──────────────────────────────────────────────────────────────────────────────

// Ida y vuelta de fechas: entra yyyy-mm-dd, sale dd/mm/yyyy.
func TestEmployee_RoundTripDeFechas(t *testing.T) {
	app, _ := buildTestApp(t)
	userID := createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", employeeBody(userID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeMap(t, resp)
	assert.Equal(t, true, created["success"])
	employeeID := int64(created["employeeId"].(float64))

	get := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/employees/%d", employeeID), nil)
	require.Equal(t, http.StatusOK, get.StatusCode)
	body := decodeMap(t, get)
	assert.Equal(t, "14/05/1990", body["date_of_birth"])
	assert.Equal(t, "15/01/2020", body["high_date"])
	assert.Nil(t, body["low_date"], "low_date ausente se serializa como null")
	assert.Equal(t, "ana@x.com", body["user_email"])
}

func TestEmployeeCreate_UsuarioInexistente404NoEscribe(t *testing.T) {
	app, employeeRepo := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/employees", employeeBody(42))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "USER_NOT_FOUND", body["code"])
	assert.Empty(t, employeeRepo.employees, "no debe escribirse ninguna fila")
}

func TestEmployeeCreate_CamposFaltantes400(t *testing.T) {
	app, _ := buildTestApp(t)
	userID := createUser(t, app, "ana@x.com")

	in := employeeBody(userID)
	delete(in, "status")
	resp := doJSON(t, app, http.MethodPost, "/api/employees", in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// Tipos malformados se rechazan en el borde, no caen hasta el storage.
func TestEmployeeCreate_TipoMalformado400(t *testing.T) {
	app, _ := buildTestApp(t)

	in := employeeBody(1)
	in["id_user"] = "uno"
	resp := doJSON(t, app, http.MethodPost, "/api/employees", in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestEmployeeUpdate_FullReplace(t *testing.T) {
	app, _ := buildTestApp(t)
	userID := createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", employeeBody(userID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	employeeID := int64(decodeMap(t, resp)["employeeId"].(float64))

	in := employeeBody(userID)
	in["status"] = "baja"
	in["low_date"] = "2024-06-30"
	put := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/employees/%d", employeeID), in)
	require.Equal(t, http.StatusOK, put.StatusCode)
	put.Body.Close()

	get := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/employees/%d", employeeID), nil)
	body := decodeMap(t, get)
	assert.Equal(t, "baja", body["status"])
	assert.Equal(t, "30/06/2024", body["low_date"])
}

func TestEmployeeUpdate_NoExiste404(t *testing.T) {
	app, _ := buildTestApp(t)
	userID := createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPut, "/api/employees/99", employeeBody(userID))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "EMPLOYEE_NOT_FOUND", body["code"])
}

func TestEmployeeList_IncluyeUserEmail(t *testing.T) {
	app, _ := buildTestApp(t)
	userID := createUser(t, app, "ana@x.com")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", employeeBody(userID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	list := doJSON(t, app, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, list.StatusCode)
	items := decodeList(t, list)
	require.Len(t, items, 1)
	assert.Equal(t, "ana@x.com", items[0]["user_email"])
}

func TestEmployeeReport_DevuelvePDF(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/employees/report", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
