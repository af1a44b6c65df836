package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"PROFILEHUB_BACK-END/internal/config"
	"PROFILEHUB_BACK-END/internal/dto"
	"PROFILEHUB_BACK-END/internal/middleware"
	"PROFILEHUB_BACK-END/internal/models"
	"PROFILEHUB_BACK-END/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	db  *pgxpool.Pool
	cfg *config.Config
	log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(db *pgxpool.Pool, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, log: log}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.AuthResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, dto.CodeMethodNotAllowed, "only POST is allowed")
		return
	}

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidRequestBody, err.Error())
		return
	}

	// Validate required fields
	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidRequestBody, "Email and password are required")
		return
	}

	// Check if user already exists
	var existingUserID uuid.UUID
	err := h.db.QueryRow(r.Context(),
		"SELECT id FROM users WHERE email = $1", req.Email).Scan(&existingUserID)
	if err == nil {
		utils.WriteErrorResponse(w, http.StatusConflict, dto.CodeUserExists, "Email already registered")
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error("password hash failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, dto.CodeInternalError, "unexpected error, please try again later")
		return
	}

	// Create user
	userID := uuid.New()
	now := time.Now()

	_, err = h.db.Exec(r.Context(),
		`INSERT INTO users (id, email, password_hash, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, req.Email, string(hashedPassword), req.DisplayName, now, now)
	if err != nil {
		h.log.Error("user insert failed", zap.String("email", req.Email), zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, dto.CodeInternalError, "unexpected error, please try again later")
		return
	}

	// Generate JWT token
	token, err := middleware.GenerateToken(userID, req.Email, &h.cfg.JWT)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, dto.CodeInternalError, "unexpected error, please try again later")
		return
	}

	user := models.User{
		ID:          userID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{
		User:  userToResponse(user),
		Token: token,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, dto.CodeMethodNotAllowed, "only POST is allowed")
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidRequestBody, err.Error())
		return
	}

	// Validate required fields
	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, dto.CodeInvalidRequestBody, "Email and password are required")
		return
	}

	// Get user from database
	var user models.User
	err := h.db.QueryRow(r.Context(),
		`SELECT id, email, password_hash, display_name, created_at, updated_at
		 FROM users WHERE email = $1`,
		req.Email).Scan(&user.ID, &user.Email, &user.PasswordHash,
		&user.DisplayName, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, dto.CodeInvalidCredentials, "Email or password is incorrect")
		return
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, dto.CodeInvalidCredentials, "Email or password is incorrect")
		return
	}

	// Generate JWT token
	token, err := middleware.GenerateToken(user.ID, user.Email, &h.cfg.JWT)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, dto.CodeInternalError, "unexpected error, please try again later")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		User:  userToResponse(user),
		Token: token,
	})
}

func userToResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
