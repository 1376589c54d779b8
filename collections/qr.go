package collections

import (
	"net/http"
	"os"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
)

// ShareQR renders a QR code PNG pointing at the collection's share link.
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := ownedCollection(w, r, id); !ok {
		return
	}

	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	png, err := qrcode.Encode(base+"/collection/"+id, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
