package kafka

type MessageReader = messageReader
type MessageWriter = messageWriter

func NewProducerWithWriter(w MessageWriter) *Producer {
	return &Producer{writer: w}
}

func NewConsumerWithReader(r MessageReader) *Consumer {
	return &Consumer{reader: r}
}
