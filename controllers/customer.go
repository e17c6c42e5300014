package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"go-checkout/middleware"
	"go-checkout/models"
	"go-checkout/store"
	"go-checkout/utils"
)

// VerificationMailer is the slice of the email service the account flow
// needs.
type VerificationMailer interface {
	SendVerificationEmail(toEmail, token string) error
}

// CustomerController handles account-related requests
type CustomerController struct {
	Store  store.Store
	Mailer VerificationMailer
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(s store.Store, mailer VerificationMailer) *CustomerController {
	return &CustomerController{Store: s, Mailer: mailer}
}

// Register handles customer registration
func (cc *CustomerController) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Balance  int    `json:"balance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password required", http.StatusBadRequest)
		return
	}
	if req.Balance < 0 {
		http.Error(w, "Balance must be >= 0", http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	verificationToken, err := utils.GenerateJWT(req.Email, "customer")
	if err != nil {
		http.Error(w, "Error generating verification token", http.StatusInternalServerError)
		return
	}

	customer := &models.Customer{
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hashedPassword),
		Balance:           req.Balance,
		Role:              "customer",
		VerificationToken: verificationToken,
	}
	if err := cc.Store.CreateCustomer(customer); err != nil {
		if errors.Is(err, store.ErrCustomerExists) {
			http.Error(w, "Customer already exists", http.StatusBadRequest)
			return
		}
		http.Error(w, "Error creating customer", http.StatusInternalServerError)
		return
	}

	if err := cc.Mailer.SendVerificationEmail(customer.Email, verificationToken); err != nil {
		log.Error().Err(err).Str("email", customer.Email).Msg("failed to send verification email")
		http.Error(w, "Error sending verification email", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode("Registered successfully. Please check your email to verify your account.")
}

// VerifyEmail handles email verification
func (cc *CustomerController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Verification token missing", http.StatusBadRequest)
		return
	}

	claims := &utils.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return utils.JwtKey, nil
	})
	if err != nil {
		http.Error(w, "Invalid token", http.StatusBadRequest)
		return
	}

	if _, err := cc.Store.VerifyCustomer(token); err != nil {
		http.Error(w, "Customer not found or already verified", http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode("Email verified successfully. You can now log in.")
}

// Login handles customer authentication
func (cc *CustomerController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	customer, err := cc.Store.GetCustomer(creds.Email)
	if err != nil {
		http.Error(w, "Customer not found", http.StatusUnauthorized)
		return
	}
	if !customer.IsVerified {
		http.Error(w, "Email not verified", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(customer.Email, customer.Role)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// GetProfile retrieves the authenticated customer's profile
func (cc *CustomerController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Could not parse customer from context", http.StatusUnauthorized)
		return
	}

	customer, err := cc.Store.GetCustomer(claims.Email)
	if err != nil {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customer)
}
