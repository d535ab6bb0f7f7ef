package common

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	utilTest "fossil-api/pkg/util/test"

	"github.com/emicklei/go-restful"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var testRouter = func(ws *restful.WebService) {
	ws.Route(ws.GET("/").To(func(request *restful.Request, response *restful.Response) {
		response.Write([]byte("welcome to fossil-api"))
	}))
	ws.Route(ws.POST("/echo").To(func(request *restful.Request, response *restful.Response) {
		body, _ := io.ReadAll(request.Request.Body)
		response.AddHeader("X-Auth", request.HeaderParameter("Authorization"))
		response.WriteHeader(http.StatusCreated)
		response.Write(body)
	}))
	ws.Route(ws.GET("/slow").To(func(request *restful.Request, response *restful.Response) {
		time.Sleep(500 * time.Millisecond)
		response.Write([]byte("too late"))
	}))
}

var _ = Describe("common help func test", func() {
	Describe("GetStringValueOrDefault test", func() {
		It("should return targetValue if targetValue is not empty", func() {
			Expect(GetStringValueOrDefault("targetValue", "defaultValue")).To(Equal("targetValue"))
		})

		It("should return defaultValue if targetValue is empty", func() {
			Expect(GetStringValueOrDefault("", "defaultValue")).To(Equal("defaultValue"))
		})
	})

	Describe("CommonRequest test", func() {
		It("should reach a mock server", func() {
			server := utilTest.StartMockServer(testRouter)
			defer server.Close()
			body, _, code, err := CommonRequest(context.Background(), server.URL, http.MethodGet, nil, nil, false, 3*time.Second)
			Expect(err).To(BeNil())
			Expect(code).To(Equal(http.StatusOK))
			Expect(string(body)).To(Equal("welcome to fossil-api"))
		})

		It("should forward body and headers", func() {
			server := utilTest.StartMockServer(testRouter)
			defer server.Close()
			body, header, code, err := CommonRequest(context.Background(), server.URL+"/echo", http.MethodPost, []byte(`{"a":1}`), map[string][]string{"Authorization": {"Bearer k"}}, false, 3*time.Second)
			Expect(err).To(BeNil())
			Expect(code).To(Equal(http.StatusCreated))
			Expect(string(body)).To(Equal(`{"a":1}`))
			Expect(header.Get("X-Auth")).To(Equal("Bearer k"))
		})

		It("should give up after the timeout", func() {
			server := utilTest.StartMockServer(testRouter)
			defer server.Close()
			_, _, code, err := CommonRequest(context.Background(), server.URL+"/slow", http.MethodGet, nil, nil, false, 50*time.Millisecond)
			Expect(err).NotTo(BeNil())
			Expect(code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("BuildQueryUrl test", func() {
		It("should encode the query", func() {
			result, err := BuildQueryUrl("https://en.wikipedia.org/w/api.php", url.Values{"srsearch": {"Palaeoloxodon naumanni"}})
			Expect(err).To(BeNil())
			Expect(result).To(Equal("https://en.wikipedia.org/w/api.php?srsearch=Palaeoloxodon+naumanni"))
		})
	})

	Describe("CreateDirIfNotExists test", func() {
		It("should return nil if the directory is created successfully", func() {
			dir := filepath.Join(GinkgoT().TempDir(), "static")
			Expect(CreateDirIfNotExists(dir)).To(Succeed())
			Expect(FileExists(filepath.Join(dir, "missing.png"))).To(BeFalse())
			stat, err := os.Stat(dir)
			Expect(err).To(BeNil())
			Expect(stat.IsDir()).To(BeTrue())
		})
	})

	Describe("TruncateRunes test", func() {
		It("should count runes rather than bytes", func() {
			Expect(TruncateRunes("這是一個螺旋狀的貝殼，殼很厚，是在白堊紀地層發現的", 15)).To(Equal("這是一個螺旋狀的貝殼，殼很厚，"))
			Expect(TruncateRunes("short", 15)).To(Equal("short"))
			Expect(TruncateRunes("abc", 0)).To(Equal(""))
			Expect(RuneLen("貝殼")).To(Equal(2))
		})
	})
})
