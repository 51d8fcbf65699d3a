package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dx3mirror/IntegralCalculator/internal/config"
	"github.com/dx3mirror/IntegralCalculator/internal/events"
	"github.com/dx3mirror/IntegralCalculator/internal/quadrature"
	"github.com/dx3mirror/IntegralCalculator/internal/service"
	"github.com/dx3mirror/IntegralCalculator/internal/service/mappers"
	"github.com/dx3mirror/IntegralCalculator/internal/store"
)

const (
	insertCalculationStm = "INSERT INTO calculations (id, function_kind, parameters, lower, upper, rule, result) VALUES ('%s', 'polynomial', '[0,1]', 0, 1, '%s', 0.4995);"
)

var _ = Describe("calculation service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		dbPath string
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		dbPath = filepath.Join(os.TempDir(), fmt.Sprintf("calculation-service-test-%s.db", uuid.NewString()))
		cfg.Database.Name = dbPath

		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
		_ = os.Remove(dbPath)
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM calculations;")
	})

	Context("compute", func() {
		It("evaluates, stores and publishes a calculation", func() {
			w := newTestWriter()
			srv := service.NewCalculationService(s, events.NewEventProducer(w))

			calculation, err := srv.Compute(context.TODO(), mappers.CalculationCreateForm{
				FunctionKind: "polynomial",
				Parameters:   []float64{0, 0, 3},
				Lower:        0,
				Upper:        2,
				Rule:         "trapezoid",
			})
			Expect(err).To(BeNil())
			Expect(calculation.ID).NotTo(Equal(uuid.Nil))
			Expect(calculation.Rule).To(Equal("trapezoid"))
			Expect(calculation.Result).To(BeNumerically("~", 8.0, 1e-5))

			stored, err := s.Calculation().Get(context.TODO(), calculation.ID)
			Expect(err).To(BeNil())
			Expect(stored.Result).To(BeNumerically("~", 8.0, 1e-5))

			Eventually(w.Len, "5s", "10ms").Should(Equal(1))
			event := w.Events()[0]
			Expect(event.Context.GetType()).To(Equal(events.CalculationMessageKind))

			var payload events.CalculationEvent
			Expect(json.Unmarshal(event.Data(), &payload)).To(Succeed())
			Expect(payload.CalculationID).To(Equal(calculation.ID.String()))
			Expect(payload.Rule).To(Equal("trapezoid"))
			Expect(payload.Result).To(BeNumerically("~", 8.0, 1e-5))
		})

		It("defaults to the rectangle rule", func() {
			w := newTestWriter()
			srv := service.NewCalculationService(s, events.NewEventProducer(w))

			calculation, err := srv.Compute(context.TODO(), mappers.CalculationCreateForm{
				FunctionKind: "polynomial",
				Parameters:   []float64{1},
				Lower:        0,
				Upper:        1,
			})
			Expect(err).To(BeNil())
			Expect(calculation.Rule).To(Equal(quadrature.RectangleIntegration))
			Expect(calculation.Result).To(BeNumerically("~", 1.0, 0.002))
		})

		It("rejects an unknown function kind", func() {
			w := newTestWriter()
			srv := service.NewCalculationService(s, events.NewEventProducer(w))

			_, err := srv.Compute(context.TODO(), mappers.CalculationCreateForm{
				FunctionKind: "exponential",
				Lower:        0,
				Upper:        1,
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidCalculation{}))

			count := 1
			tx := gormdb.Raw("SELECT COUNT(*) FROM calculations;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("rejects an unknown rule", func() {
			w := newTestWriter()
			srv := service.NewCalculationService(s, events.NewEventProducer(w))

			_, err := srv.Compute(context.TODO(), mappers.CalculationCreateForm{
				FunctionKind: "polynomial",
				Parameters:   []float64{1},
				Lower:        0,
				Upper:        1,
				Rule:         "simpson",
			})
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidCalculation{}))

			count := 1
			tx := gormdb.Raw("SELECT COUNT(*) FROM calculations;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})
	})

	Context("list", func() {
		It("lists all the calculations", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), "rectangle"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), "trapezoid"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewCalculationService(s, events.NewEventProducer(newTestWriter()))
			calculations, err := srv.ListCalculations(context.TODO(), nil)
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(2))
		})

		It("lists the calculations filtered by rule", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), "rectangle"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertCalculationStm, uuid.NewString(), "trapezoid"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewCalculationService(s, events.NewEventProducer(newTestWriter()))
			calculations, err := srv.ListCalculations(context.TODO(), service.NewCalculationFilter(service.WithRule("trapezoid")))
			Expect(err).To(BeNil())
			Expect(calculations).To(HaveLen(1))
			Expect(calculations[0].Rule).To(Equal("trapezoid"))
		})
	})

	Context("get", func() {
		It("retrieves a calculation", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, id, "rectangle"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewCalculationService(s, events.NewEventProducer(newTestWriter()))
			calculation, err := srv.GetCalculation(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(calculation.Result).To(BeNumerically("~", 0.4995, 1e-9))
		})

		It("fails to retrieve a missing calculation", func() {
			srv := service.NewCalculationService(s, events.NewEventProducer(newTestWriter()))
			_, err := srv.GetCalculation(context.TODO(), uuid.New())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("delete", func() {
		It("deletes a calculation", func() {
			id := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertCalculationStm, id, "rectangle"))
			Expect(tx.Error).To(BeNil())

			srv := service.NewCalculationService(s, events.NewEventProducer(newTestWriter()))
			Expect(srv.DeleteCalculation(context.TODO(), id)).To(Succeed())

			count := 1
			tx = gormdb.Raw("SELECT COUNT(*) FROM calculations;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("fails to delete a missing calculation", func() {
			srv := service.NewCalculationService(s, events.NewEventProducer(newTestWriter()))
			err := srv.DeleteCalculation(context.TODO(), uuid.New())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrResourceNotFound{}))
		})
	})

	Context("rules", func() {
		It("lists the known rules and the default", func() {
			srv := service.NewCalculationService(s, events.NewEventProducer(newTestWriter()))
			rules, defaultRule := srv.Rules()
			Expect(rules).To(Equal([]string{quadrature.RectangleIntegration, quadrature.TrapezoidIntegration}))
			Expect(defaultRule).To(Equal(quadrature.RectangleIntegration))
		})
	})
})

type testwriter struct {
	lock     sync.Mutex
	messages []cloudevents.Event
}

func newTestWriter() *testwriter {
	return &testwriter{messages: []cloudevents.Event{}}
}

func (t *testwriter) Write(ctx context.Context, topic string, e cloudevents.Event) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.messages = append(t.messages, e)
	return nil
}

func (t *testwriter) Close(_ context.Context) error {
	return nil
}

func (t *testwriter) Len() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return len(t.messages)
}

func (t *testwriter) Events() []cloudevents.Event {
	t.lock.Lock()
	defer t.lock.Unlock()
	return append([]cloudevents.Event{}, t.messages...)
}
