package routes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

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

var _ = Describe("Client Releases Router", func() {
	var ctrl *gomock.Controller
	var mockReleaseService *mock_services.MockClientReleaseServiceInterface
	var router chi.Router

	validBody := func() []byte {
		body, err := json.Marshal(&models.ClientRelease{
			Version:    "1.2.3",
			StorageKey: "releases/rustdesk-1.2.3.tar.gz",
			Sha256:     strings.Repeat("ab", 32),
			ByteSize:   4096,
		})
		Expect(err).ToNot(HaveOccurred())
		return body
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockReleaseService = mock_services.NewMockClientReleaseServiceInterface(ctrl)
		mockServices := &dependencies.FleetAPIServices{
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
		router.Route("/releases", routes.MakeClientReleasesRouter)
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	Context("create release", func() {
		It("should record the release and return 201", func() {
			mockReleaseService.EXPECT().CreateRelease(gomock.Any()).
				Return(&models.ClientRelease{Version: "1.2.3"}, nil)
			req, err := http.NewRequest("POST", "/releases", bytes.NewBuffer(validBody()))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})
		It("should return 400 for a malformed digest", func() {
			body, err := json.Marshal(&models.ClientRelease{
				Version:    "1.2.3",
				StorageKey: "releases/rustdesk-1.2.3.tar.gz",
				Sha256:     "nothex",
				ByteSize:   4096,
			})
			Expect(err).ToNot(HaveOccurred())
			req, err := http.NewRequest("POST", "/releases", bytes.NewBuffer(body))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
		It("should return 409 for a duplicate version", func() {
			mockReleaseService.EXPECT().CreateRelease(gomock.Any()).
				Return(nil, new(services.ReleaseVersionAlreadyExistsError))
			req, err := http.NewRequest("POST", "/releases", bytes.NewBuffer(validBody()))
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("upload release binary", func() {
		multipartBody := func(fieldName string) (*bytes.Buffer, string) {
			body := &bytes.Buffer{}
			writer := multipart.NewWriter(body)
			part, err := writer.CreateFormFile(fieldName, "rustdesk-1.2.3.tar.gz")
			Expect(err).ToNot(HaveOccurred())
			_, err = part.Write([]byte("binary"))
			Expect(err).ToNot(HaveOccurred())
			Expect(writer.Close()).To(Succeed())
			return body, writer.FormDataContentType()
		}

		It("should store the binary and return its storage key", func() {
			mockReleaseService.EXPECT().UploadReleaseBinary("rustdesk-1.2.3.tar.gz", gomock.Any()).
				Return("releases/abc/rustdesk-1.2.3.tar.gz", nil)
			body, contentType := multipartBody("file")
			req, err := http.NewRequest("POST", "/releases/upload", body)
			Expect(err).ToNot(HaveOccurred())
			req.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Body.String()).To(ContainSubstring("releases/abc/rustdesk-1.2.3.tar.gz"))
		})
		It("should return 400 when the file field is missing", func() {
			body, contentType := multipartBody("not-the-file")
			req, err := http.NewRequest("POST", "/releases/upload", body)
			Expect(err).ToNot(HaveOccurred())
			req.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
		It("should return 424 when the binary cannot be stored", func() {
			mockReleaseService.EXPECT().UploadReleaseBinary("rustdesk-1.2.3.tar.gz", gomock.Any()).
				Return("", new(services.StorageUploadFailedError))
			body, contentType := multipartBody("file")
			req, err := http.NewRequest("POST", "/releases/upload", body)
			Expect(err).ToNot(HaveOccurred())
			req.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusFailedDependency))
		})
	})

	Context("active release", func() {
		It("should return the release with a download URL", func() {
			mockReleaseService.EXPECT().GetActive().
				Return(&models.ClientRelease{Version: "1.2.3", Active: true}, "https://bucket/signed", nil)
			req, err := http.NewRequest("GET", "/releases/active", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring("https://bucket/signed"))
		})
		It("should return 204 when no release is active", func() {
			mockReleaseService.EXPECT().GetActive().Return(nil, "", nil)
			req, err := http.NewRequest("GET", "/releases/active", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})

	Context("activation", func() {
		It("should activate the release", func() {
			mockReleaseService.EXPECT().Activate(uint(5)).Return(&models.ClientRelease{Active: true}, nil)
			req, err := http.NewRequest("POST", "/releases/5/activate", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
		It("should return 404 for an unknown release", func() {
			mockReleaseService.EXPECT().Activate(uint(5)).Return(nil, new(services.ReleaseNotFoundError))
			req, err := http.NewRequest("POST", "/releases/5/activate", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
		It("should deactivate the release", func() {
			mockReleaseService.EXPECT().Deactivate(uint(5)).Return(nil)
			req, err := http.NewRequest("POST", "/releases/5/deactivate", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("delete release", func() {
		It("should return 424 when the stored binary cannot be released", func() {
			mockReleaseService.EXPECT().DeleteRelease(uint(5)).Return(new(services.StorageReleaseFailedError))
			req, err := http.NewRequest("DELETE", "/releases/5", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusFailedDependency))
		})
		It("should delete the release", func() {
			mockReleaseService.EXPECT().DeleteRelease(uint(5)).Return(nil)
			req, err := http.NewRequest("DELETE", "/releases/5", nil)
			Expect(err).ToNot(HaveOccurred())
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})
})
