package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"dishcovery/db"
	"dishcovery/models"
	"dishcovery/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const avatarFolder = "./static/uploads/avatars"

func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UserProfileResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		LastLogin: user.LastLogin,
	})
}

// EditProfile replaces only the provided fields; the edit-profile dialog
// commits its pending form as one call.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Name  *string `json:"name,omitempty"`
		Bio   *string `json:"bio,omitempty"`
		Email *string `json:"email,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Bio != nil {
		set["bio"] = *input.Bio
	}
	if input.Email != nil {
		if !strings.Contains(*input.Email, "@") {
			http.Error(w, "Invalid email", http.StatusBadRequest)
			return
		}
		set["email"] = *input.Email
	}

	_, err := db.UserCollection.UpdateOne(context.TODO(), bson.M{"userid": userID}, bson.M{"$set": set})
	if err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	GetProfile(w, r, nil)
}

// EditAvatar stores a square-cropped avatar and records its URL.
func EditAvatar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, "Missing avatar file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		http.Error(w, "Unsupported image", http.StatusBadRequest)
		return
	}

	if err := utils.EnsureDir(avatarFolder); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	thumb := imaging.Thumbnail(img, 256, 256, imaging.Lanczos)
	name := uuid.NewString() + ".jpg"
	if err := imaging.Save(thumb, filepath.Join(avatarFolder, name)); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	url := "/static/uploads/avatars/" + name
	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"avatar": url, "updated_at": time.Now()}},
	)
	if err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"avatar": url})
}

// DeleteProfile removes the account. Collections are owned exclusively by
// the user, so their rows and memberships go with it.
func DeleteProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cursor, err := db.CollectionsCollection.Find(context.TODO(), bson.M{"user_id": userID})
	if err == nil {
		var cols []models.Collection
		if err := cursor.All(context.TODO(), &cols); err == nil {
			for _, col := range cols {
				db.MembershipsCollection.DeleteMany(context.TODO(), bson.M{"collection_id": col.ID})
			}
		}
		db.CollectionsCollection.DeleteMany(context.TODO(), bson.M{"user_id": userID})
	}

	if _, err := db.UserCollection.DeleteOne(context.TODO(), bson.M{"userid": userID}); err != nil {
		http.Error(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Account deleted", nil)
}
