package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"monhajj/internal/adapter/http/handlers/mocks"
	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/wizard"
	"monhajj/internal/usecase"
	"monhajj/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestWizard(t *testing.T, flow wizard.Flow) *wizard.Wizard {
	t.Helper()
	w, err := wizard.New("wiz-1", flow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func wizardRouter(h *WizardHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/wizards", h.CreateWizard)
	r.GET("/v1/wizards/:id", h.GetWizard)
	r.PUT("/v1/wizards/:id/offering", h.SelectOffering)
	r.PUT("/v1/wizards/:id/room-type", h.SelectRoomType)
	r.PUT("/v1/wizards/:id/travelers", h.SetTravelers)
	r.PUT("/v1/wizards/:id/clients/:index", h.UpdateClient)
	r.PUT("/v1/wizards/:id/payment-option", h.SelectPaymentOption)
	r.POST("/v1/wizards/:id/advance", h.Advance)
	r.POST("/v1/wizards/:id/retreat", h.Retreat)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeWizard(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body %s: %v", w.Body.String(), err)
	}
	return body
}

func TestWizardHandler_CreateWizard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to package flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		uc.EXPECT().Start(gomock.Any(), wizard.FlowPackage).Return(newTestWizard(t, wizard.FlowPackage), nil)

		w := serve(r, http.MethodPost, "/v1/wizards", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeWizard(t, w)
		if body["step"] != "select_offering" || body["flow"] != "package" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("room flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		uc.EXPECT().Start(gomock.Any(), wizard.FlowRoom).Return(newTestWizard(t, wizard.FlowRoom), nil)

		w := serve(r, http.MethodPost, "/v1/wizards", `{"flow":"room"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if decodeWizard(t, w)["step"] != "form" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		uc.EXPECT().Start(gomock.Any(), wizard.Flow("cruise")).Return(nil, wizard.ErrUnknownFlow)

		w := serve(r, http.MethodPost, "/v1/wizards", `{"flow":"cruise"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := wizardRouter(NewWizardHandler(mocks.NewMockIWizardUseCase(ctrl)))

		w := serve(r, http.MethodPost, "/v1/wizards", `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWizardHandler_GetWizard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWizardUseCase(ctrl)
	r := wizardRouter(NewWizardHandler(uc))

	uc.EXPECT().Get(gomock.Any(), "missing").Return(nil, usecase.ErrWizardNotFound)

	w := serve(r, http.MethodGet, "/v1/wizards/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestWizardHandler_Commands(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("select offering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		wz := newTestWizard(t, wizard.FlowPackage)
		if err := wz.SelectOffering(entities.Offering{ID: "hajj-2027-premium", TravelType: entities.TravelTypeHajj, Category: entities.CategoryPremium}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.EXPECT().SelectOffering(gomock.Any(), "wiz-1", "hajj-2027-premium").Return(wz, nil)

		w := serve(r, http.MethodPut, "/v1/wizards/wiz-1/offering", `{"offering_id":"hajj-2027-premium"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		draft := decodeWizard(t, w)["draft"].(map[string]any)
		if draft["total_price"] != 9750.0 {
			t.Fatalf("unexpected draft: %v", draft)
		}
	})

	t.Run("select offering requires id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := wizardRouter(NewWizardHandler(mocks.NewMockIWizardUseCase(ctrl)))

		w := serve(r, http.MethodPut, "/v1/wizards/wiz-1/offering", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("room type on package flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		uc.EXPECT().SelectRoomType(gomock.Any(), "wiz-1", entities.RoomTypeDouble).
			Return(newTestWizard(t, wizard.FlowPackage), wizard.ErrRoomTypeNotSupported)

		w := serve(r, http.MethodPut, "/v1/wizards/wiz-1/room-type", `{"room_type":"Double"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeWizard(t, w)
		errBody := body["error"].(map[string]any)
		if errBody["code"] != "ROOM_TYPE_NOT_SUPPORTED" || body["id"] != "wiz-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("travelers out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		ve := pkg.NewValidationError("number of people must be between 1 and 10",
			pkg.ValidationDetail{Field: "number_of_people", Message: "number of people must be between 1 and 10"})
		uc.EXPECT().SetNumberOfPeople(gomock.Any(), "wiz-1", 11).Return(newTestWizard(t, wizard.FlowPackage), ve)

		w := serve(r, http.MethodPut, "/v1/wizards/wiz-1/travelers", `{"number_of_people":11}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		errBody := decodeWizard(t, w)["error"].(map[string]any)
		details := errBody["details"].([]any)
		if len(details) != 1 || details[0].(map[string]any)["field"] != "number_of_people" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("update client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		want := entities.ClientRecord{Title: entities.ClientTitleMr, FirstName: "Yusuf", LastName: "Haddad", Email: "yusuf@example.fr", Phone: "+33 6 12 34 56 78"}
		uc.EXPECT().UpdateClient(gomock.Any(), "wiz-1", 0, want).Return(newTestWizard(t, wizard.FlowPackage), nil)

		w := serve(r, http.MethodPut, "/v1/wizards/wiz-1/clients/0",
			`{"title":"Mr","first_name":" Yusuf","last_name":"Haddad","email":"yusuf@example.fr","phone":"+33 6 12 34 56 78"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update client bad index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := wizardRouter(NewWizardHandler(mocks.NewMockIWizardUseCase(ctrl)))

		w := serve(r, http.MethodPut, "/v1/wizards/wiz-1/clients/first", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update client out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		uc.EXPECT().UpdateClient(gomock.Any(), "wiz-1", 4, gomock.Any()).Return(newTestWizard(t, wizard.FlowPackage), wizard.ErrClientIndexOutOfRange)

		w := serve(r, http.MethodPut, "/v1/wizards/wiz-1/clients/4", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment option locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		uc.EXPECT().SelectPaymentOption(gomock.Any(), "wiz-1", 0.5).Return(newTestWizard(t, wizard.FlowPackage), wizard.ErrStepLocked)

		w := serve(r, http.MethodPut, "/v1/wizards/wiz-1/payment-option", `{"fraction":0.5}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("advance with validation errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		ve := pkg.NewValidationError("please correct the highlighted fields",
			pkg.ValidationDetail{Field: "clients[0].email", Message: "email is invalid"})
		uc.EXPECT().Advance(gomock.Any(), "wiz-1").Return(newTestWizard(t, wizard.FlowPackage), ve)

		w := serve(r, http.MethodPost, "/v1/wizards/wiz-1/advance", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeWizard(t, w)
		if body["error"].(map[string]any)["message"] != "please correct the highlighted fields" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("advance submission failure keeps the step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		se := &wizard.SubmissionError{Message: "Your card was declined.", Err: errors.New("card_declined")}
		uc.EXPECT().Advance(gomock.Any(), "wiz-1").Return(newTestWizard(t, wizard.FlowRoom), se)

		w := serve(r, http.MethodPost, "/v1/wizards/wiz-1/advance", "")
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		body := decodeWizard(t, w)
		if body["error"].(map[string]any)["message"] != "Your card was declined." || body["submitted"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("retreat from first step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		uc.EXPECT().Retreat(gomock.Any(), "wiz-1").Return(newTestWizard(t, wizard.FlowPackage), wizard.ErrAtFirstStep)

		w := serve(r, http.MethodPost, "/v1/wizards/wiz-1/retreat", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("store failure has no wizard body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := wizardRouter(NewWizardHandler(uc))

		uc.EXPECT().Retreat(gomock.Any(), "wiz-1").Return(nil, errors.New("redis down"))

		w := serve(r, http.MethodPost, "/v1/wizards/wiz-1/retreat", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeWizard(t, w)
		if body["code"] != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
