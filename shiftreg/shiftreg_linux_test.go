package shiftreg

import "github.com/BertoldVdb/go-switchhal/linux-pio/spi"

var _ Transferer = (*spi.Device)(nil)
