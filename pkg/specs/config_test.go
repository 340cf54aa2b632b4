/*
Copyright © 2020-2026 Simon de Hartog
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/hartogjr/lcte/pkg/specs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	v "github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newEnvConfig() *LcteConfig {
	config := NewLcteConfig(v.New())
	config.Viper.SetEnvPrefix(LCTE_ENV_PREFIX)
	config.Viper.AutomaticEnv()
	config.Viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "_"))
	return config
}

var _ = Describe("Specs Test", func() {

	Context("Defaults", func() {
		config := NewLcteConfig(nil)
		err := config.Unmarshal()

		It("Loads without a config file", func() {
			Expect(err).Should(BeNil())
			Expect(config.GetLogging().Destination).To(Equal(DestinationStderr))
			Expect(config.GetLogging().Level).To(Equal("info"))
			Expect(config.GetLogging().Facility).To(Equal("local0"))
			Expect(config.GetLogging().Ident).To(Equal("lcte"))
			Expect(config.GetLogging().MaxMessageSize).To(Equal(8192))
			Expect(config.GetLogging().ToSyslog()).To(BeFalse())
			Expect(config.GetGeneral().HasDebug()).To(BeFalse())
		})
	})

	Context("Environment", func() {
		It("Overrides nested keys", func() {
			os.Setenv("LCTE_GENERAL__DEBUG", "true")
			os.Setenv("LCTE_LOGGING__DESTINATION", "syslog")
			os.Setenv("LCTE_LOGGING__STRIP", "12")
			DeferCleanup(func() {
				os.Unsetenv("LCTE_GENERAL__DEBUG")
				os.Unsetenv("LCTE_LOGGING__DESTINATION")
				os.Unsetenv("LCTE_LOGGING__STRIP")
			})

			config := newEnvConfig()
			Expect(config.Unmarshal()).Should(BeNil())
			Expect(config.GetGeneral().Debug).To(BeTrue())
			Expect(config.GetLogging().ToSyslog()).To(BeTrue())
			Expect(config.GetLogging().Strip).To(Equal(12))
		})
	})

	Context("Config file", func() {
		It("Reads the yaml file", func() {
			dir := GinkgoT().TempDir()
			file := filepath.Join(dir, "lcte.yml")
			Expect(os.WriteFile(file, []byte(`
logging:
  destination: stdout
  level: warning
  max_message_size: 64
  color: true
`), 0644)).Should(BeNil())

			config := NewLcteConfig(nil)
			config.Viper.SetConfigFile(file)
			Expect(config.Unmarshal()).Should(BeNil())
			Expect(config.GetLogging().Destination).To(Equal(DestinationStdout))
			Expect(config.GetLogging().Level).To(Equal("warning"))
			Expect(config.GetLogging().MaxMessageSize).To(Equal(64))
			Expect(config.GetLogging().Color).To(BeTrue())
			// Untouched keys keep their defaults
			Expect(config.GetLogging().Facility).To(Equal("local0"))
		})

		It("Fails on a broken file", func() {
			dir := GinkgoT().TempDir()
			file := filepath.Join(dir, "lcte.yml")
			Expect(os.WriteFile(file, []byte("logging: [\n"), 0644)).Should(BeNil())

			config := NewLcteConfig(nil)
			config.Viper.SetConfigFile(file)
			Expect(config.Unmarshal()).ShouldNot(BeNil())
		})
	})

	Context("Yaml", func() {
		It("Dumps the logging section", func() {
			config := NewLcteConfig(nil)
			Expect(config.Unmarshal()).Should(BeNil())

			data, err := config.Yaml()
			Expect(err).Should(BeNil())

			dump := map[string]interface{}{}
			Expect(yaml.Unmarshal(data, &dump)).Should(BeNil())
			Expect(dump).To(HaveKey("logging"))
			Expect(dump).NotTo(HaveKey("viper"))
		})
	})

})
