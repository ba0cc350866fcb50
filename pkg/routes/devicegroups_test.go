package routes_test

import (
	"bytes"
	"encoding/json"
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

var _ = Describe("Device Groups Router", func() {
	var ctrl *gomock.Controller
	var mockGroupsService *mock_services.MockDeviceGroupsServiceInterface
	var router chi.Router

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockGroupsService = mock_services.NewMockDeviceGroupsServiceInterface(ctrl)
		mockServices := &dependencies.FleetAPIServices{
			DeviceGroupsService: mockGroupsService,
			Log:                 log.NewEntry(log.StandardLogger()),
		}
		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := dependencies.ContextWithServices(r.Context(), mockServices)
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
		router.Route("/device-groups", routes.MakeDeviceGroupsRouter)
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	Context("create group", func() {
		It("should create a static group", func() {
			name := "Floor 1"
			mockGroupsService.EXPECT().CreateDeviceGroup(gomock.Any()).
				Return(&models.DeviceGroup{Name: name, Type: models.DeviceGroupTypeStatic}, nil)
			body, err := json.Marshal(&models.DeviceGroup{Name: name, Type: models.DeviceGroupTypeStatic})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/device-groups", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})
		It("should reject a dynamic group without a rule", func() {
			body, err := json.Marshal(&models.DeviceGroup{Name: "Linux fleet", Type: models.DeviceGroupTypeDynamic})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/device-groups", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring(models.DeviceGroupRuleRequiredErrorMessage))
		})
		It("should reject a static group carrying a rule", func() {
			body, err := json.Marshal(&models.DeviceGroup{Name: "Floor 2", Type: models.DeviceGroupTypeStatic, Rule: "os = 'linux'"})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/device-groups", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
		It("should return 409 for a duplicated name", func() {
			mockGroupsService.EXPECT().CreateDeviceGroup(gomock.Any()).
				Return(nil, new(services.DeviceGroupAlreadyExists))
			body, err := json.Marshal(&models.DeviceGroup{Name: "Floor 1", Type: models.DeviceGroupTypeStatic})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/device-groups", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("members", func() {
		It("should resolve the group members", func() {
			members := &[]models.Device{{UUID: faker.UUIDHyphenated()}}
			mockGroupsService.EXPECT().ResolveMembers(uint(7)).Return(members, nil)
			req, err := http.NewRequest("GET", "/device-groups/7/members", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring((*members)[0].UUID))
		})
		It("should add members to a static group", func() {
			uuids := []string{faker.UUIDHyphenated()}
			mockGroupsService.EXPECT().AddDeviceGroupDevices(uint(7), gomock.Eq(uuids)).Return(nil)
			body, err := json.Marshal(map[string]interface{}{"DeviceUUIDs": uuids})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/device-groups/7/members", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
		It("should return 400 for membership edits on a dynamic group", func() {
			uuids := []string{faker.UUIDHyphenated()}
			mockGroupsService.EXPECT().AddDeviceGroupDevices(uint(7), gomock.Eq(uuids)).
				Return(new(services.WrongDeviceGroupKind))
			body, err := json.Marshal(map[string]interface{}{"DeviceUUIDs": uuids})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/device-groups/7/members", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
		It("should remove members from a static group", func() {
			uuids := []string{faker.UUIDHyphenated()}
			mockGroupsService.EXPECT().RemoveDeviceGroupDevices(uint(7), gomock.Eq(uuids)).Return(nil)
			body, err := json.Marshal(map[string]interface{}{"DeviceUUIDs": uuids})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("DELETE", "/device-groups/7/members", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("delete group", func() {
		It("should return 404 for an unknown group", func() {
			mockGroupsService.EXPECT().DeleteDeviceGroupByID(uint(7)).Return(new(services.DeviceGroupNotFound))
			req, err := http.NewRequest("DELETE", "/device-groups/7", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
