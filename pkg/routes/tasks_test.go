package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/bxcodec/faker/v3"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	log "github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/fleetdesk/fleet-api/pkg/dependencies"
	"github.com/fleetdesk/fleet-api/pkg/models"
	"github.com/fleetdesk/fleet-api/pkg/routes"
	"github.com/fleetdesk/fleet-api/pkg/services"
	"github.com/fleetdesk/fleet-api/pkg/services/mock_services"
)

var _ = Describe("Device Tasks Router", func() {
	var deviceUUID string
	var ctrl *gomock.Controller
	var mockTaskService *mock_services.MockTaskServiceInterface
	var router chi.Router

	BeforeEach(func() {
		deviceUUID = faker.UUIDHyphenated()
		ctrl = gomock.NewController(GinkgoT())

		mockTaskService = mock_services.NewMockTaskServiceInterface(ctrl)
		mockServices := &dependencies.FleetAPIServices{
			TaskService: mockTaskService,
			Log:         log.NewEntry(log.StandardLogger()),
		}
		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := dependencies.ContextWithServices(r.Context(), mockServices)
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
		router.Route("/devices", routes.MakeDevicesRouter)
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	tasksURL := func() string {
		return fmt.Sprintf("/devices/%s/tasks", deviceUUID)
	}

	Context("enqueue", func() {
		It("should queue a task and return 201", func() {
			payload := json.RawMessage(`{"command":"uptime"}`)
			mockTaskService.EXPECT().Enqueue(gomock.Eq(deviceUUID), gomock.Eq(models.TaskKindRunCommand), gomock.Any()).
				Return(&models.Task{Kind: models.TaskKindRunCommand, Status: models.TaskStatusPending}, nil)
			body, err := json.Marshal(map[string]interface{}{"Kind": models.TaskKindRunCommand, "Payload": payload})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", tasksURL(), bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Body.String()).To(ContainSubstring(models.TaskStatusPending))
		})
		It("should return 400 for a payload that does not match the kind", func() {
			mockTaskService.EXPECT().Enqueue(gomock.Eq(deviceUUID), gomock.Any(), gomock.Any()).
				Return(nil, new(services.InvalidTaskPayloadError))
			body, err := json.Marshal(map[string]interface{}{"Kind": models.TaskKindSetPassword, "Payload": json.RawMessage(`{}`)})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", tasksURL(), bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
		It("should return 404 for an unknown device", func() {
			mockTaskService.EXPECT().Enqueue(gomock.Eq(deviceUUID), gomock.Any(), gomock.Any()).
				Return(nil, new(services.DeviceNotFoundError))
			body, err := json.Marshal(map[string]interface{}{"Kind": models.TaskKindReboot})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", tasksURL(), bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("list", func() {
		It("should return the device tasks with the total count", func() {
			mockTaskService.EXPECT().ListForDevice(gomock.Eq(deviceUUID), 30, 0).
				Return(&[]models.Task{{Kind: models.TaskKindReboot, Status: models.TaskStatusDone}}, int64(1), nil)
			req, err := http.NewRequest("GET", tasksURL(), nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(models.TaskKindReboot))
		})
	})

	Context("cancel", func() {
		It("should cancel a pending task", func() {
			mockTaskService.EXPECT().Cancel(uint(17)).
				Return(&models.Task{Status: models.TaskStatusFailed, Error: services.TaskCancelledByAdminError}, nil)
			req, err := http.NewRequest("POST", fmt.Sprintf("%s/17/cancel", tasksURL()), nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
		It("should return 409 when the task was already claimed", func() {
			mockTaskService.EXPECT().Cancel(uint(17)).Return(nil, new(services.InvalidTaskTransitionError))
			req, err := http.NewRequest("POST", fmt.Sprintf("%s/17/cancel", tasksURL()), nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
		It("should return 400 for a non numeric task id", func() {
			req, err := http.NewRequest("POST", fmt.Sprintf("%s/seventeen/cancel", tasksURL()), nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
