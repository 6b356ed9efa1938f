// controllers/idgen/snowflake.go
package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init precisa rodar antes de qualquer Create de cotação.
func Init(nodeNumber int64) {
	var err error
	node, err = snowflake.NewNode(nodeNumber)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}
