package service_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/switchboardhq/gateway/core/config"
	"github.com/switchboardhq/gateway/internal/service"
)

var _ = Describe("NewChatServiceFromConfig", func() {
	It("builds the operational service when the credential is present", func() {
		svc := service.NewChatServiceFromConfig(config.OpenRouterConfig{
			APIKey:  "sk-or-test",
			BaseURL: "https://openrouter.ai/api/v1",
		})
		Expect(svc.Ready()).To(BeTrue())
	})

	It("falls back to the degraded service without a credential", func() {
		svc := service.NewChatServiceFromConfig(config.OpenRouterConfig{})
		Expect(svc.Ready()).To(BeFalse())
	})
})
