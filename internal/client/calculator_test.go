package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	api "github.com/dx3mirror/IntegralCalculator/api/v1alpha1"
	"github.com/dx3mirror/IntegralCalculator/internal/client"
)

var _ = Describe("calculator client", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("CreateCalculation", func() {
		It("successfully creates a calculation", func() {
			expected := api.Calculation{
				Id:       uuid.New(),
				Function: api.FunctionSpec{Kind: api.FunctionKindPolynomial, Parameters: []float64{0, 1}},
				Upper:    1,
				Rule:     api.RuleRectangle,
				Result:   0.4995,
			}

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.URL.Path).To(Equal("/api/v1alpha1/calculations"))
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(&expected)
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			calculation, err := c.CreateCalculation(ctx, api.CalculationCreate{
				Function: api.FunctionSpec{Kind: api.FunctionKindPolynomial, Parameters: []float64{0, 1}},
				Upper:    1,
			})

			Expect(err).To(BeNil())
			Expect(calculation).NotTo(BeNil())
			Expect(calculation.Id).To(Equal(expected.Id))
			Expect(calculation.Result).To(Equal(expected.Result))
		})

		It("surfaces the service error message", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(&api.Error{Message: "unknown rule \"simpson\""})
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			_, err := c.CreateCalculation(ctx, api.CalculationCreate{
				Function: api.FunctionSpec{Kind: api.FunctionKindPolynomial},
				Rule:     "simpson",
			})

			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("status 400"))
			Expect(err.Error()).To(ContainSubstring("unknown rule"))
		})

		It("returns error when the service is unreachable", func() {
			c := client.NewCalculator("http://192.0.2.0:8080", 1*time.Second)

			_, err := c.CreateCalculation(ctx, api.CalculationCreate{
				Function: api.FunctionSpec{Kind: api.FunctionKindPolynomial},
			})

			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("failed to call calculator service"))
		})
	})

	Describe("ListCalculations", func() {
		It("lists calculations", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodGet))
				Expect(r.URL.Path).To(Equal("/api/v1alpha1/calculations"))

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(api.CalculationList{{Id: uuid.New()}, {Id: uuid.New()}})
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			calculations, err := c.ListCalculations(ctx, "")
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(2))
		})

		It("propagates the rule filter", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("rule")).To(Equal(api.RuleTrapezoid))

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(api.CalculationList{})
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			_, err := c.ListCalculations(ctx, api.RuleTrapezoid)
			Expect(err).To(BeNil())
		})
	})

	Describe("GetCalculation", func() {
		It("returns a calculation by id", func() {
			id := uuid.New()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1alpha1/calculations/" + id.String()))

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(&api.Calculation{Id: id})
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			calculation, err := c.GetCalculation(ctx, id)
			Expect(err).To(BeNil())
			Expect(calculation.Id).To(Equal(id))
		})

		It("surfaces a not found error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(&api.Error{Message: "calculation not found"})
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			_, err := c.GetCalculation(ctx, uuid.New())
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("status 404"))
		})
	})

	Describe("DeleteCalculation", func() {
		It("deletes a calculation", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.Method).To(Equal(http.MethodDelete))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("{}"))
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			Expect(c.DeleteCalculation(ctx, uuid.New())).To(Succeed())
		})
	})

	Describe("ListRules", func() {
		It("lists the registered rules", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/v1alpha1/rules"))

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(&api.RuleList{Rules: []string{api.RuleRectangle, api.RuleTrapezoid}, Default: api.RuleRectangle})
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			rules, err := c.ListRules(ctx)
			Expect(err).To(BeNil())
			Expect(rules.Rules).To(HaveLen(2))
			Expect(rules.Default).To(Equal(api.RuleRectangle))
		})
	})

	Describe("Health", func() {
		It("returns nil when the service is healthy", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/health"))
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			Expect(c.Health(ctx)).To(Succeed())
		})

		It("returns error when the service is unhealthy", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer server.Close()

			c := client.NewCalculator(server.URL, 5*time.Second)

			err := c.Health(ctx)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("status 503"))
		})
	})
})
