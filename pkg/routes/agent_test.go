package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	log "github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/fleetdesk/fleet-api/config"
	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/models"
	"github.com/fleetdesk/fleet-api/pkg/routes"
	"github.com/fleetdesk/fleet-api/pkg/services"
	"github.com/fleetdesk/fleet-api/pkg/services/mock_services"
)

// signAgentCredential mirrors what enrollment hands to the agent
func signAgentCredential(deviceUUID string) string {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   deviceUUID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		Issuer:    "fleet-api",
	}
	credential, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Get().AgentTokenSecret))
	Expect(err).ToNot(HaveOccurred())
	return credential
}

var _ = Describe("Agent Router", func() {
	var deviceUUID string
	var ctrl *gomock.Controller
	var mockDeviceService *mock_services.MockDeviceServiceInterface
	var mockEnrollmentService *mock_services.MockEnrollmentServiceInterface
	var mockTaskService *mock_services.MockTaskServiceInterface
	var mockReleaseService *mock_services.MockClientReleaseServiceInterface
	var router chi.Router

	BeforeEach(func() {
		deviceUUID = faker.UUIDHyphenated()
		ctrl = gomock.NewController(GinkgoT())
		mockDeviceService = mock_services.NewMockDeviceServiceInterface(ctrl)
		mockEnrollmentService = mock_services.NewMockEnrollmentServiceInterface(ctrl)
		mockTaskService = mock_services.NewMockTaskServiceInterface(ctrl)
		mockReleaseService = mock_services.NewMockClientReleaseServiceInterface(ctrl)
		mockServices := &dependencies.FleetAPIServices{
			DeviceService:        mockDeviceService,
			EnrollmentService:    mockEnrollmentService,
			TaskService:          mockTaskService,
			ClientReleaseService: mockReleaseService,
			Log:                  log.NewEntry(log.StandardLogger()),
		}
		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := dependencies.ContextWithServices(r.Context(), mockServices)
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
		router.Route("/agent", routes.MakeAgentRouter)
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	authorizedRequest := func(method, url string, body []byte) *http.Request {
		var reader *bytes.Buffer
		if body == nil {
			reader = bytes.NewBuffer([]byte("{}"))
		} else {
			reader = bytes.NewBuffer(body)
		}
		req, err := http.NewRequest(method, url, reader)
		Expect(err).ToNot(HaveOccurred())
		req.Header.Set("Authorization", "Bearer "+signAgentCredential(deviceUUID))
		return req
	}

	Context("enrollment", func() {
		It("should exchange the token secret for a device and credential", func() {
			secret := faker.UUIDHyphenated()
			device := &models.Device{UUID: deviceUUID, RustDeskID: "123456789"}
			mockEnrollmentService.EXPECT().RedeemToken(gomock.Eq(secret), gomock.Any()).
				Return(device, "signed-credential", nil)

			body, err := json.Marshal(map[string]interface{}{
				"Secret": secret,
				"Claim":  models.DeviceClaim{RustDeskID: "123456789", Name: "reception-pc"},
			})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/agent/enroll", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Body.String()).To(ContainSubstring("signed-credential"))
		})
		It("should answer an expired token with a code", func() {
			mockEnrollmentService.EXPECT().RedeemToken(gomock.Any(), gomock.Any()).
				Return(nil, "", new(services.TokenExpiredError))

			body, err := json.Marshal(map[string]interface{}{
				"Secret": faker.UUIDHyphenated(),
				"Claim":  models.DeviceClaim{RustDeskID: "123456789"},
			})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/agent/enroll", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Body.String()).To(ContainSubstring("TOKEN_EXPIRED"))
		})
		It("should reject a claim without a RustDesk id", func() {
			body, err := json.Marshal(map[string]interface{}{"Secret": faker.UUIDHyphenated()})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/agent/enroll", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring("INVALID_CLAIM"))
		})
	})

	Context("credential middleware", func() {
		It("should reject a request without a credential", func() {
			req, err := http.NewRequest("POST", "/agent/checkin", bytes.NewBufferString("{}"))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Body.String()).To(ContainSubstring("CREDENTIAL_MISSING"))
		})
		It("should reject a forged credential", func() {
			req, err := http.NewRequest("POST", "/agent/checkin", bytes.NewBufferString("{}"))
			Expect(err).ToNot(HaveOccurred())
			req.Header.Set("Authorization", "Bearer not-a-credential")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(recorder.Body.String()).To(ContainSubstring("CREDENTIAL_INVALID"))
		})
	})

	Context("check-in", func() {
		It("should refresh the device bound to the credential", func() {
			mockDeviceService.EXPECT().CheckIn(gomock.Eq(deviceUUID), gomock.Any()).
				Return(&models.Device{UUID: deviceUUID}, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, authorizedRequest("POST", "/agent/checkin", nil))
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("task polling", func() {
		It("should return the claimed task", func() {
			mockTaskService.EXPECT().PollNext(gomock.Eq(deviceUUID)).
				Return(&models.Task{Kind: models.TaskKindReboot, Status: models.TaskStatusInProgress}, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, authorizedRequest("POST", "/agent/tasks/next", nil))
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(models.TaskStatusInProgress))
		})
		It("should return 204 when the queue is empty", func() {
			mockTaskService.EXPECT().PollNext(gomock.Eq(deviceUUID)).Return(nil, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, authorizedRequest("POST", "/agent/tasks/next", nil))
			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})

	Context("result reporting", func() {
		It("should record the outcome for the credentialed device", func() {
			mockTaskService.EXPECT().ReportResult(gomock.Eq(deviceUUID), uint(9), gomock.Any()).
				Return(&models.Task{Status: models.TaskStatusDone}, nil)
			body, err := json.Marshal(&models.TaskResult{Success: true})
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, authorizedRequest("POST", "/agent/tasks/9/result", body))
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
		It("should answer a stale report with ALREADY_HANDLED", func() {
			mockTaskService.EXPECT().ReportResult(gomock.Eq(deviceUUID), uint(9), gomock.Any()).
				Return(nil, new(services.InvalidTaskTransitionError))
			body, err := json.Marshal(&models.TaskResult{Success: true})
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, authorizedRequest("POST", "/agent/tasks/9/result", body))
			Expect(recorder.Code).To(Equal(http.StatusConflict))
			Expect(recorder.Body.String()).To(ContainSubstring("ALREADY_HANDLED"))
		})
		It("should hide another device's task from the reporter", func() {
			mockTaskService.EXPECT().ReportResult(gomock.Eq(deviceUUID), uint(9), gomock.Any()).
				Return(nil, new(services.TaskNotFoundError))
			body, err := json.Marshal(&models.TaskResult{Success: true})
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, authorizedRequest("POST", "/agent/tasks/9/result", body))
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
			Expect(recorder.Body.String()).To(ContainSubstring("TASK_NOT_FOUND"))
		})
		It("should reject a non numeric task id", func() {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, authorizedRequest("POST", "/agent/tasks/nine/result", nil))
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring("INVALID_TASK_ID"))
		})
	})

	Context("update check", func() {
		It("should serve the active release to a credentialed agent", func() {
			mockReleaseService.EXPECT().GetActive().
				Return(&models.ClientRelease{Version: "1.2.3", Active: true}, "https://bucket/signed", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, authorizedRequest("GET", "/agent/update", nil))
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(fmt.Sprintf("%q", "1.2.3")))
		})
	})
})
