package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dx3mirror/IntegralCalculator/internal/config"
	st "github.com/dx3mirror/IntegralCalculator/internal/store"
	"github.com/dx3mirror/IntegralCalculator/internal/store/model"
)

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
		dbPath string
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		dbPath = filepath.Join(os.TempDir(), fmt.Sprintf("store-test-%s.db", uuid.NewString()))
		cfg.Database.Name = dbPath

		db, err := st.InitDB(cfg)
		Expect(err).To(BeNil())
		gormDB = db

		store = st.NewStore(db)
		Expect(store).ToNot(BeNil())
		Expect(store.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		store.Close()
		_ = os.Remove(dbPath)
	})

	AfterEach(func() {
		gormDB.Exec("DELETE FROM calculations;")
	})

	Context("transaction", func() {
		It("inserts a calculation successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			calculationID := uuid.New()
			_, err = store.Calculation().Create(ctx, model.Calculation{ID: calculationID, FunctionKind: "polynomial", Rule: "rectangle"})
			Expect(err).To(BeNil())

			_, err = st.Commit(ctx)
			Expect(err).To(BeNil())

			found, err := store.Calculation().Get(context.TODO(), calculationID)
			Expect(err).To(BeNil())
			Expect(found.ID).To(Equal(calculationID))
		})

		It("rollback leaves no calculation behind", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			calculationID := uuid.New()
			_, err = store.Calculation().Create(ctx, model.Calculation{ID: calculationID, FunctionKind: "polynomial", Rule: "rectangle"})
			Expect(err).To(BeNil())

			_, err = st.Rollback(ctx)
			Expect(err).To(BeNil())

			_, err = store.Calculation().Get(context.TODO(), calculationID)
			Expect(err).To(MatchError(st.ErrRecordNotFound))
		})
	})
})
