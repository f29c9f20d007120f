package logx

import "github.com/sirupsen/logrus"

// L is the shared service logger. Mains call Init once before use.
var L = logrus.New()

func Init() {
	L.SetLevel(logrus.DebugLevel)
	L.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
