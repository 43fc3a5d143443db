package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/intelliclaim/apiconfig/internal/endpoints"
	"github.com/intelliclaim/apiconfig/internal/handler"
)

var _ = Describe("ConfigHandler", func() {
	var (
		h   *handler.ConfigHandler
		log *slog.Logger
	)

	BeforeEach(func() {
		log = slog.New(slog.NewTextHandler(GinkgoWriter, nil))

		var err error
		h, err = handler.NewConfigHandler(log, endpoints.New("https://example.test"))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("ServeHTTP", func() {
		It("should return the endpoints as JSON", func() {
			req := httptest.NewRequest(http.MethodGet, "/config", nil)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))

			var body handler.ConfigResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.BaseURL).To(Equal("https://example.test"))
			Expect(body.Endpoints).To(Equal(map[endpoints.Name]string{
				endpoints.Query:  "https://example.test/query",
				endpoints.Upload: "https://example.test/upload",
				endpoints.Health: "https://example.test/health",
			}))
		})

		It("should use the upper case names as keys", func() {
			req := httptest.NewRequest(http.MethodGet, "/config", nil)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			Expect(rec.Body.String()).To(ContainSubstring(`"QUERY":"https://example.test/query"`))
		})

		It("should answer HEAD without a body", func() {
			req := httptest.NewRequest(http.MethodHead, "/config", nil)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.Len()).To(BeZero())
		})

		DescribeTable("should reject other methods",
			func(method string) {
				req := httptest.NewRequest(method, "/config", nil)
				rec := httptest.NewRecorder()

				h.ServeHTTP(rec, req)

				Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
				Expect(rec.Header().Get("Allow")).To(Equal("GET, HEAD"))
			},
			Entry("POST", http.MethodPost),
			Entry("PUT", http.MethodPut),
			Entry("DELETE", http.MethodDelete),
		)

		It("should serve the same body on every request", func() {
			first := httptest.NewRecorder()
			h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/config", nil))

			second := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/config", nil)
			req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
			h.ServeHTTP(second, req)

			Expect(second.Body.String()).To(Equal(first.Body.String()))
		})
	})
})
