package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/blueprint/core/config"
)

var _ = Describe("Load", func() {
	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}

	BeforeEach(func() {
		setEnv("BLUEPRINT_ENV", "test")
	})

	It("defaults the server to the memory backend", func() {
		cfg, err := config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Store.Backend).To(Equal(config.StoreMemory))
		Expect(cfg.Store.HistoryLimit).To(Equal(1000))
		Expect(cfg.Redis.PRDCacheTTL).To(Equal(24 * time.Hour))
	})

	It("defaults the MCP server to sqlite", func() {
		cfg, err := config.Load(config.ServiceTypeMCP)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Store.Backend).To(Equal(config.StoreSQLite))
	})

	It("rejects unknown store backends", func() {
		setEnv("STORE_BACKEND", "mongo")
		_, err := config.Load(config.ServiceTypeServer)
		Expect(err).To(MatchError(ContainSubstring("STORE_BACKEND")))
	})

	It("requires redis and a shared store for the worker", func() {
		setEnv("STORE_BACKEND", "postgres")
		setEnv("REDIS_URL", "")
		_, err := config.Load(config.ServiceTypeWorker)
		Expect(err).To(MatchError(ContainSubstring("REDIS_URL")))

		setEnv("REDIS_URL", "redis://localhost:6379/0")
		setEnv("STORE_BACKEND", "memory")
		_, err = config.Load(config.ServiceTypeWorker)
		Expect(err).To(MatchError(ContainSubstring("shared store")))
	})

	It("splits CORS origins", func() {
		setEnv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
		cfg, err := config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.CORS.AllowedOrigins).To(Equal([]string{"https://a.example", "https://b.example"}))
	})

	It("reports sub-config enablement", func() {
		Expect(config.RedisConfig{}.Enabled()).To(BeFalse())
		Expect(config.GitLabConfig{Token: "t"}.Enabled()).To(BeTrue())
		Expect(config.ArangoDBConfig{URL: "http://x", Username: "root"}.Enabled()).To(BeFalse())
	})
})
