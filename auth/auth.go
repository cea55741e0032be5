package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"voyago/db"
	"voyago/globals"
	"voyago/middleware"
	"voyago/models"
	"voyago/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func generateAccessToken(user models.User) (string, error) {
	claims := middleware.Claims{
		Email:    user.Email,
		UserID:   user.UserID,
		UserType: user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// POST /api/auth/register
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		UserType string `json:"userType"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Email == "" || input.Name == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email, name and password are required")
		return
	}
	if input.UserType == "" {
		input.UserType = "traveler"
	}

	err := db.UserCollection.FindOne(context.TODO(), bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		UserID:          uuid.NewString(),
		Email:           input.Email,
		Name:            input.Name,
		UserType:        input.UserType,
		Password:        string(hashed),
		CreatedAt:       time.Now(),
		Favorites:       []string{},
		Bookings:        []models.DestinationBooking{},
		HotelBookings:   []models.HotelBooking{},
		PackageBookings: []models.PackageBooking{},
	}

	if _, err := db.UserCollection.InsertOne(context.TODO(), user); err != nil {
		log.Printf("Insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"userid":  user.UserID,
	})
}

// POST /api/auth/login
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"email": input.Email}).Decode(&storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	refreshToken := uuid.NewString()

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{
			"refreshtoken": hashToken(refreshToken),
			"refreshexp":   time.Now().Add(refreshTokenTTL),
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store refresh token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":      true,
		"token":        tokenString,
		"refreshToken": refreshToken,
		"userid":       storedUser.UserID,
	})
}

// POST /api/auth/token/refresh
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		UserID       string `json:"userid"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.UserID == "" || input.RefreshToken == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "userid and refreshToken are required")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": input.UserID}).Decode(&storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	if storedUser.RefreshToken != hashToken(input.RefreshToken) || time.Now().After(storedUser.RefreshExpiry) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// Rotate the refresh token on every use
	newRefresh := uuid.NewString()
	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{
			"refreshtoken": hashToken(newRefresh),
			"refreshexp":   time.Now().Add(refreshTokenTTL),
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to rotate refresh token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":      true,
		"token":        tokenString,
		"refreshToken": newRefresh,
	})
}

// POST /api/auth/logout
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	_, err := db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$unset": bson.M{"refreshtoken": "", "refreshexp": ""}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
