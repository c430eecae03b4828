// Package fdisk provides safe, builder-driven bindings for util-linux
// libfdisk, the partitioning engine behind fdisk(8).
//
// The engine exposes one opaque, manually-freed context per edit session
// and reports failures as negative errno values. This package converts
// that surface into a small set of owned value types: a Session wraps one
// context handle and releases it exactly once, builders validate
// configuration before anything touches the engine, and every native
// status comes back as a *Error with a matchable Kind.
//
// A typical write path:
//
//	sess, err := fdisk.NewSession().
//		Device("/dev/sdb").
//		ReadWrite().
//		WipeMetadata().
//		Build()
//	if err != nil {
//		return err
//	}
//	defer sess.Close()
//
//	if err := sess.CreateTable(fdisk.GPT); err != nil {
//		return err
//	}
//
//	ptype, _ := fdisk.NewPartType().GUID(fdisk.GUIDLinuxData).Build()
//	part, _ := fdisk.NewPartitionTemplate().
//		Type(ptype).
//		Name("rootfs").
//		SizeInSectors(1 << 21).
//		Build()
//
//	if _, err := sess.AddPartition(part); err != nil {
//		return err
//	}
//	return sess.Write()
//
// Nothing is persisted until Write; a session closed without writing
// leaves the device untouched. Sessions are single-owner and not safe for
// concurrent use; independent sessions over different devices are.
package fdisk
