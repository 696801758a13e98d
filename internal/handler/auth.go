package handler

import (
    "context"      // context with cancellation for DB calls
    "database/sql" // sql.ErrNoRows checks
    "errors"
    "log"
    "net/http" // HTTP status codes
    "strings"  // input trimming
    "time"     // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/minhvu/tech-store-backend/internal/config"
    "github.com/minhvu/tech-store-backend/internal/queue"
    "github.com/minhvu/tech-store-backend/internal/repository"
    queue_publisher "github.com/minhvu/tech-store-backend/internal/service"
    "github.com/minhvu/tech-store-backend/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
    Cfg   config.Config
    Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
    Name     string `json:"name"`
    Email    string `json:"email"`
    Password string `json:"password"`
}
type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

type userPart struct {
    ID    uint64 `json:"id"`
    Name  string `json:"name"`
    Email string `json:"email"`
}
type registerResp struct {
    Message string   `json:"message"`
    User    userPart `json:"user"`
}
type loginResp struct {
    Message string   `json:"message"`
    Token   string   `json:"token"`
    User    userPart `json:"user"`
}

// Register: validate, hash-and-insert, return the public user fields.  The
// password never appears in any response; the hash stays in the repository
// layer.  A duplicate email maps to 409 regardless of whether the row
// existed before the request or was inserted by a concurrent registration;
// the unique key on users.email decides.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Name == "" || req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and password required"})
    }
    if len(req.Password) < 6 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 6 characters"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, h.Cfg.BcryptCost)
    if err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
        }
        log.Printf("auth: create user failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }

    // Best effort: a broker outage must not fail the registration.
    go func(ev queue.UserRegisteredEvent) {
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = queue_publisher.PublishUserRegistered(ctx, ev)
    }(queue.UserRegisteredEvent{
        UserID:       uid,
        Name:         req.Name,
        Email:        req.Email,
        RegisteredAt: time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, registerResp{
        Message: "registered",
        User:    userPart{ID: uid, Name: req.Name, Email: req.Email},
    })
}

// Login: verify credentials and return a signed token.  An unknown email
// and a wrong password return the same status and message so the endpoint
// cannot be used to probe which addresses are registered.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
        }
        log.Printf("auth: lookup user failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    tok, err := utils.NewAuthToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.TokenTTLHours)
    if err != nil {
        log.Printf("auth: issue token failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
    }

    return c.JSON(http.StatusOK, loginResp{
        Message: "logged in",
        Token:   tok.Token,
        User:    userPart{ID: u.ID, Name: u.Name, Email: u.Email},
    })
}

// Me: simple protected endpoint returning the authenticated identity.
func (h *AuthHandler) Me(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{
        "user_id": c.Get("user_id"),
        "email":   c.Get("email"),
    })
}
