package services_test

import (
	"context"
	"fmt"

	"github.com/bxcodec/faker/v3"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/models"
	"github.com/fleetdesk/fleet-api/pkg/services"

	log "github.com/sirupsen/logrus"
)

var _ = Describe("DeviceGroupsService", func() {
	var (
		ctx                 context.Context
		deviceGroupsService services.DeviceGroupsServiceInterface
	)
	BeforeEach(func() {
		ctx = context.Background()
		deviceGroupsService = services.NewDeviceGroupsService(ctx, log.NewEntry(log.StandardLogger()))
	})

	createDevice := func(os string, osVersion string) *models.Device {
		device := &models.Device{
			UUID:       faker.UUIDHyphenated(),
			RustDeskID: fmt.Sprintf("%d", faker.RandomUnixTime()),
			Name:       faker.Name(),
			OS:         os,
			OSVersion:  osVersion,
		}
		Expect(db.DB.Create(device).Error).To(BeNil())
		return device
	}

	Context("creation", func() {
		It("should fail to create a DeviceGroup with duplicated name", func() {
			deviceGroupName := faker.Name()
			deviceGroup, err := deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{Name: deviceGroupName, Type: models.DeviceGroupTypeDefault})
			Expect(err).To(BeNil())
			Expect(deviceGroup).NotTo(BeNil())

			_, err = deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{Name: deviceGroupName, Type: models.DeviceGroupTypeDefault})
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(Equal(services.DeviceGroupAlreadyExistsMsg))
		})
		It("should reject a dynamic group whose rule does not parse", func() {
			_, err := deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{
				Name: faker.Name(),
				Type: models.DeviceGroupTypeDynamic,
				Rule: `os = 'linux' AND`,
			})
			Expect(err).To(MatchError(new(services.InvalidGroupRule)))
		})
	})

	Context("static membership", func() {
		var group *models.DeviceGroup
		var deviceA, deviceB *models.Device
		BeforeEach(func() {
			var err error
			group, err = deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{Name: faker.Name(), Type: models.DeviceGroupTypeStatic})
			Expect(err).To(BeNil())
			deviceA = createDevice("linux", "6.1")
			deviceB = createDevice("windows", "10")
		})

		It("should add and resolve members", func() {
			err := deviceGroupsService.AddDeviceGroupDevices(group.ID, []string{deviceA.UUID, deviceB.UUID})
			Expect(err).To(BeNil())

			members, err := deviceGroupsService.ResolveMembers(group.ID)
			Expect(err).To(BeNil())
			Expect(*members).To(HaveLen(2))
		})
		It("should be idempotent when adding a device twice", func() {
			Expect(deviceGroupsService.AddDeviceGroupDevices(group.ID, []string{deviceA.UUID})).To(BeNil())
			Expect(deviceGroupsService.AddDeviceGroupDevices(group.ID, []string{deviceA.UUID})).To(BeNil())

			members, err := deviceGroupsService.ResolveMembers(group.ID)
			Expect(err).To(BeNil())
			Expect(*members).To(HaveLen(1))
		})
		It("should treat removing a non-member as a no-op", func() {
			Expect(deviceGroupsService.AddDeviceGroupDevices(group.ID, []string{deviceA.UUID})).To(BeNil())
			Expect(deviceGroupsService.RemoveDeviceGroupDevices(group.ID, []string{deviceB.UUID})).To(BeNil())

			members, err := deviceGroupsService.ResolveMembers(group.ID)
			Expect(err).To(BeNil())
			Expect(*members).To(HaveLen(1))
		})
		It("should require devices to be supplied", func() {
			err := deviceGroupsService.AddDeviceGroupDevices(group.ID, []string{})
			Expect(err).To(MatchError(new(services.DeviceGroupDevicesNotSupplied)))
		})
		It("should reject unknown device UUIDs", func() {
			err := deviceGroupsService.AddDeviceGroupDevices(group.ID, []string{faker.UUIDHyphenated()})
			Expect(err).To(MatchError(new(services.DeviceGroupDevicesNotFound)))
		})
		It("should refuse membership edits on a dynamic group", func() {
			dynamic, err := deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{
				Name: faker.Name(),
				Type: models.DeviceGroupTypeDynamic,
				Rule: `os = 'linux'`,
			})
			Expect(err).To(BeNil())

			err = deviceGroupsService.AddDeviceGroupDevices(dynamic.ID, []string{deviceA.UUID})
			Expect(err).To(MatchError(new(services.WrongDeviceGroupKind)))
		})
	})

	Context("dynamic membership", func() {
		It("should re-evaluate the rule against the registry on every call", func() {
			osVersion := fmt.Sprintf("%d.0.1", faker.RandomUnixTime()%1000+100)
			group, err := deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{
				Name: faker.Name(),
				Type: models.DeviceGroupTypeDynamic,
				Rule: fmt.Sprintf(`os = 'linux' AND os_version = '%s'`, osVersion),
			})
			Expect(err).To(BeNil())

			members, err := deviceGroupsService.ResolveMembers(group.ID)
			Expect(err).To(BeNil())
			Expect(*members).To(BeEmpty())

			matching := createDevice("linux", osVersion)
			createDevice("windows", osVersion)

			members, err = deviceGroupsService.ResolveMembers(group.ID)
			Expect(err).To(BeNil())
			Expect(*members).To(HaveLen(1))
			Expect((*members)[0].UUID).To(Equal(matching.UUID))
		})
	})

	Context("deletion", func() {
		It("should clear membership rows and leave devices untouched", func() {
			group, err := deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{Name: faker.Name(), Type: models.DeviceGroupTypeStatic})
			Expect(err).To(BeNil())
			device := createDevice("linux", "6.1")
			Expect(deviceGroupsService.AddDeviceGroupDevices(group.ID, []string{device.UUID})).To(BeNil())

			Expect(deviceGroupsService.DeleteDeviceGroupByID(group.ID)).To(BeNil())

			_, err = deviceGroupsService.GetDeviceGroupByID(group.ID)
			Expect(err).To(MatchError(new(services.DeviceGroupNotFound)))

			var memberships int64
			result := db.DB.Table("device_groups_devices").Where("device_group_id = ?", group.ID).Count(&memberships)
			Expect(result.Error).To(BeNil())
			Expect(memberships).To(BeZero())

			var stored models.Device
			Expect(db.DB.First(&stored, device.ID).Error).To(BeNil())
		})
	})

	Context("update", func() {
		It("should reject a new rule that does not parse", func() {
			group, err := deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{
				Name: faker.Name(),
				Type: models.DeviceGroupTypeDynamic,
				Rule: `os = 'linux'`,
			})
			Expect(err).To(BeNil())

			_, err = deviceGroupsService.UpdateDeviceGroup(group.ID, &models.DeviceGroup{Rule: `os = `})
			Expect(err).To(MatchError(new(services.InvalidGroupRule)))
		})
		It("should rename a group", func() {
			group, err := deviceGroupsService.CreateDeviceGroup(&models.DeviceGroup{Name: faker.Name(), Type: models.DeviceGroupTypeStatic})
			Expect(err).To(BeNil())

			newName := faker.Name()
			updated, err := deviceGroupsService.UpdateDeviceGroup(group.ID, &models.DeviceGroup{Name: newName})
			Expect(err).To(BeNil())
			Expect(updated.Name).To(Equal(newName))
		})
	})
})
