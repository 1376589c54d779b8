package collections

import (
	"net/http"
	"path/filepath"

	"dishcovery/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const coverFolder = "./static/uploads/covers"

// UploadCover accepts a multipart cover image, resizes it to a display-sized
// JPEG and stores the resulting URL on the collection.
func UploadCover(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("cover")
	if err != nil {
		http.Error(w, "Missing cover file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		http.Error(w, "Unsupported image", http.StatusBadRequest)
		return
	}

	if err := utils.EnsureDir(coverFolder); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	resized := imaging.Resize(img, 1024, 0, imaging.Lanczos)
	name := uuid.NewString() + ".jpg"
	if err := imaging.Save(resized, filepath.Join(coverFolder, name)); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	url := "/static/uploads/covers/" + name
	col, err := UpdateCollection(r.Context(), id, CollectionUpdate{CoverImageURL: &url})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, col)
}
